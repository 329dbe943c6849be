package cssgen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cssgen/value"
)

// ErrUnknownProperty is thrown by strict renderers for property keys
// found in neither column of the property name table. Lenient
// renderers pass such keys through unchanged instead.
var ErrUnknownProperty = errors.New("unknown style property")

// ErrUnsupportedValue is thrown for leaf values which are not a
// boolean, a number, a string, or a list thereof.
var ErrUnsupportedValue = value.ErrUnsupported

// UnknownPropertyError reports the offending key together with the
// selector of the enclosing rule, if any. It unwraps to
// ErrUnknownProperty.
type UnknownPropertyError struct {
	Key      string
	Selector string
}

func (e UnknownPropertyError) Error() string {
	if e.Selector == "" {
		return fmt.Sprintf("invalid style name: %q", e.Key)
	}
	return fmt.Sprintf("invalid style name: %q in selector: %q", e.Key, e.Selector)
}

func (e UnknownPropertyError) Unwrap() error {
	return ErrUnknownProperty
}
