// options.go
package fixmsg

// ParserOption configures a Parser at construction time.
type ParserOption func(*Parser) error

// AllowEmptyValues permits zero-length field values.
func AllowEmptyValues(allow bool) ParserOption {
	return func(p *Parser) error {
		p.SetAllowEmptyValues(allow)
		return nil
	}
}

// AllowMissingBeginString disables the leading-field checks.
func AllowMissingBeginString(allow bool) ParserOption {
	return func(p *Parser) error {
		return p.SetAllowMissingBeginString(allow)
	}
}

// StripFieldsBeforeBeginString discards well-formed fields ahead of
// BeginString (8).
func StripFieldsBeforeBeginString(strip bool) ParserOption {
	return func(p *Parser) error {
		return p.SetStripFieldsBeforeBeginString(strip)
	}
}

// StopByte sets an additional terminator byte for fields and messages.
func StopByte(b byte) ParserOption {
	return func(p *Parser) error {
		p.SetStopByte(b)
		return nil
	}
}

// StopTag changes the message-terminating tag from Checksum (10).
func StopTag(tag int) ParserOption {
	return func(p *Parser) error {
		p.SetStopTag(tag)
		return nil
	}
}

// NewParserWithOptions returns a parser configured up front.  It fails
// with ErrParserConfig when the options conflict.
func NewParserWithOptions(opts ...ParserOption) (*Parser, error) {
	p := NewParser()
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}
