// Package typed implements structured SIP header values.
//
// Every header comes with a tokenizer that splits raw bytes without copying,
// a conversion function that validates and builds the value, and a parser
// combining both:
//
//	rest, tok, err := typed.TokenizeVia(in)
//	via, err := typed.ViaFrom(tok)
//	via, err := typed.ParseVia("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds")
//
// Parsers require the whole input to be consumed, tokenizers return the rest.
// Headers render with their canonical name by default, [RenderOptions] selects compact names.
package typed
