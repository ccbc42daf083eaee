// Package kvbin implements the binary KeyValues encoding.
//
// Every entry starts with a one-byte type tag and a null-terminated UTF-8
// name. Containers (tag NONE) are followed by their children and an END tag;
// strings (tag STRING) by a null-terminated value. The legacy numeric tags
// INT32, COLOR, POINTER, UINT64, INT64 and FLOAT32 are decoded into decimal
// strings but never written. A complete stream is one root entry followed by
// one extra END byte.
package kvbin
