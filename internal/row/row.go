// Package row implements the fixed (id, username, email) schema and its
// on-disk byte layout.
package row

import "encoding/binary"

const (
	// MaxUsernameLength is the longest username accepted by the parser.
	MaxUsernameLength = 32
	// MaxEmailLength is the longest email accepted by the parser.
	MaxEmailLength = 255

	idOffset       = 0
	idSize         = 4
	usernameOffset = idOffset + idSize
	usernameSize   = MaxUsernameLength + 1 // +1 for the zero terminator
	emailOffset    = usernameOffset + usernameSize
	emailSize      = MaxEmailLength + 1

	// Size is the total serialized width of a Row, in bytes.
	Size = emailOffset + emailSize
)

// Row is the engine's only schema: a positive integer ID plus two bounded
// strings.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Serialize writes row into dst[offset:offset+Size] in the fixed field
// layout: id (4 bytes), username (33 bytes, zero-padded), email (256 bytes,
// zero-padded). dst must have at least offset+Size bytes.
func Serialize(row Row, dst []byte, offset int) {
	buf := dst[offset : offset+Size]
	binary.LittleEndian.PutUint32(buf[idOffset:idOffset+idSize], row.ID)
	putFixedString(buf[usernameOffset:usernameOffset+usernameSize], row.Username)
	putFixedString(buf[emailOffset:emailOffset+emailSize], row.Email)
}

// Deserialize reads a Row out of src[offset:offset+Size].
func Deserialize(src []byte, offset int) Row {
	buf := src[offset : offset+Size]
	return Row{
		ID:       binary.LittleEndian.Uint32(buf[idOffset : idOffset+idSize]),
		Username: getFixedString(buf[usernameOffset : usernameOffset+usernameSize]),
		Email:    getFixedString(buf[emailOffset : emailOffset+emailSize]),
	}
}

// putFixedString copies s into field, zero-padding the remainder. s is
// assumed to already satisfy the field's length bound; that bound is
// enforced upstream by the parser (see internal/parser), not here.
func putFixedString(field []byte, s string) {
	n := copy(field, s)
	for i := n; i < len(field); i++ {
		field[i] = 0
	}
}

// getFixedString trims a zero-padded field at its first zero byte.
func getFixedString(field []byte) string {
	n := 0
	for n < len(field) && field[n] != 0 {
		n++
	}
	return string(field[:n])
}
