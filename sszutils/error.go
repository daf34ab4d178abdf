package sszutils

import "fmt"

var (
	ErrListTooBig    = fmt.Errorf("list length is higher than max value")
	ErrUnexpectedEOF = fmt.Errorf("unexpected end of SSZ")
	ErrOffset        = fmt.Errorf("incorrect offset")
	ErrVectorLength  = fmt.Errorf("incorrect vector length")
	ErrBytesLength   = fmt.Errorf("incorrect byte vector length")
	ErrUintOverflow  = fmt.Errorf("integer exceeds type bit width")
	ErrBitCount      = fmt.Errorf("incorrect bit count")
	ErrValueType     = fmt.Errorf("unexpected value type for schema")
)
