// Package kvtext implements the KeyValues text form: a tokenizer, a loader
// that rebuilds trees from tokens, and an emitter.
//
// The text form looks like:
//
//	"root"
//	{
//		"name"		"value"
//		"child"
//		{
//			"escaped"		"tab\there \"quoted\""
//		}
//	}
//
// Names and values are usually quoted. Inside quotes a backslash introduces
// an escape: \\, \n, \r and \t map to their control characters and any other
// character stands for itself. Bare tokens end at whitespace, quotes or
// braces; a bare token containing [...] is a conditional. A slash starts a
// comment that runs to the end of the line.
package kvtext
