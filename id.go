// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a provider-assigned identifier. The API sends numeric ids; strings
// are accepted too and compare equal to the same digits.
type ID string

func (o *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if bytes.Equal(b, []byte("null")) {
		*o = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*o = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither a number nor a string: %s", b)
	}
	*o = ID(n.String())

	return nil
}

func (o ID) String() string {
	return string(o)
}
