// Package guid provides a GUID type and a strict codec for its Microsoft
// "registry" text form, {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}.
//
// The backing structure for a GUID is identical to that used by the
// golang.org/x/sys/windows GUID type: one 32-bit field, two 16-bit fields and
// an 8-byte array. There are two main binary encodings used for a GUID, the
// big-endian encoding, and the Windows (mixed-endian) encoding. See here for
// details: https://en.wikipedia.org/wiki/Universally_unique_identifier#Encoding
//
// Parsing accepts exactly 38 characters with hex digits in either case;
// formatting always produces lowercase hex.
package guid
