// Package hexx converts between byte buffers and ASCII hex text.
//
// Encode always produces uppercase digits, two per input byte. Decode
// accepts both cases, rejects odd-length input and rejects any byte
// outside [0-9A-Fa-f] with an INVALID_ARGUMENT error whose "position"
// detail is the offset of the offending byte. For every byte slice b,
// Decode(Encode(b)) equals b.
package hexx
