package scen

import "fmt"

// UnknownEditionTagError reports a leading version tag that does not match
// any supported edition.
type UnknownEditionTagError struct {
	Tag [4]byte
}

func (e *UnknownEditionTagError) Error() string {
	return fmt.Sprintf("unknown edition tag %q", e.Tag[:])
}

// TruncatedInputError reports that fewer bytes remained in the input than
// a field required.
type TruncatedInputError struct {
	Section string
	Field   string
	Offset  int64
	Want    int
	Got     int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated input in %s.%s at offset %d: want %d bytes, got %d",
		e.Section, e.Field, e.Offset, e.Want, e.Got)
}

// CorruptCompressedBlockError reports a malformed deflate stream in the
// payload block.
type CorruptCompressedBlockError struct {
	Err error
}

func (e *CorruptCompressedBlockError) Error() string {
	return fmt.Sprintf("corrupt compressed block: %v", e.Err)
}

func (e *CorruptCompressedBlockError) Unwrap() error { return e.Err }

// StringTooLongError reports a string whose length cannot be represented
// by the prefix type or fixed buffer the target edition declares.
type StringTooLongError struct {
	Section string
	Field   string
	Length  int
	Max     int
}

func (e *StringTooLongError) Error() string {
	return fmt.Sprintf("string too long in %s.%s: %d bytes, limit %d",
		e.Section, e.Field, e.Length, e.Max)
}

// ValueOutOfRangeError reports a stored value that cannot be represented
// in the narrower field width of the target edition.
type ValueOutOfRangeError struct {
	Section string
	Field   string
	Index   int
	Value   int64
	Max     int64
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("value out of range in %s.%s[%d]: %d exceeds %d",
		e.Section, e.Field, e.Index, e.Value, e.Max)
}

// MissingRequiredFieldError reports an encode of an aggregate that lacks a
// field the target edition declares. This indicates a conversion defect,
// not a recoverable user error.
type MissingRequiredFieldError struct {
	Section string
	Field   string
	Target  Edition
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %s.%s for target edition %v",
		e.Section, e.Field, e.Target)
}

// PlayerCountExceededError reports a conversion that would have to drop an
// active player slot to fit the target edition's player bound.
type PlayerCountExceededError struct {
	Active int
	Max    int
	Target Edition
}

func (e *PlayerCountExceededError) Error() string {
	return fmt.Sprintf("%d active players exceed the %d-player limit of edition %v",
		e.Active, e.Max, e.Target)
}

// LossNote records one piece of content a successful conversion had to
// discard because the target edition cannot represent it. Notes are
// collected and returned alongside the result, never raised.
type LossNote struct {
	Section string
	Detail  string
}

func (n LossNote) String() string {
	return fmt.Sprintf("%s: %s", n.Section, n.Detail)
}
