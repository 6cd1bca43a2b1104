package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"colorkit/colors"
)

// Parser finds color values in CSS.
type Parser struct {
	log   *zap.Logger
	named bool
}

// NewParser creates a new CSS parser. When named is set identifiers in color
// bearing declarations are matched against known color names.
func NewParser(log *zap.Logger, named bool) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser"), named: named}
}

// Parse scans style sheet text. The optional source parameter identifies
// what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Sheet {
	return p.scan(data, false, source...)
}

// ParseInline scans declaration list, as found in "style" attribute.
func (p *Parser) ParseInline(data []byte, source ...string) *Sheet {
	return p.scan(data, true, source...)
}

// ParseValue scans single property value, as found in presentation
// attributes like fill="red" or bgcolor="#fff".
func (p *Parser) ParseValue(property, value string) []Occurrence {
	var res []Occurrence
	for _, f := range p.scanTokens(property, lexValue([]byte(value)), nil) {
		res = append(res, Occurrence{Property: property, Raw: f.raw, Color: f.color})
	}
	return res
}

func (p *Parser) scan(data []byte, inline bool, source ...string) *Sheet {
	sheet := &Sheet{}
	if len(source) > 0 && source[0] != "" {
		sheet.Source = source[0]
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)), zap.Bool("inline", inline))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), inline)

	var (
		atRules  []string
		selector string
		lastErr  = -1
	)

	add := func(property string, tokens []css.Token) {
		for _, f := range p.scanTokens(property, tokens, sheet) {
			sheet.Colors = append(sheet.Colors, Occurrence{
				AtRule:   strings.Join(atRules, " "),
				Selector: selector,
				Property: property,
				Raw:      f.raw,
				Color:    f.color,
			})
		}
	}

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			if !parser.HasParseError() || parser.Offset() == lastErr {
				if err != nil && !errors.Is(err, io.EOF) {
					p.log.Debug("CSS read error", zap.Error(err))
					sheet.Warnings = append(sheet.Warnings, err.Error())
				}
				return sheet
			}
			// parser recovers on the next declaration or rule
			lastErr = parser.Offset()
			p.log.Debug("CSS parse error", zap.Error(err))
			sheet.Warnings = append(sheet.Warnings, err.Error())

		case css.BeginAtRuleGrammar:
			atRules = append(atRules, strings.TrimSpace(string(data)+" "+joinTokens(nil, parser.Values())))

		case css.EndAtRuleGrammar:
			if len(atRules) > 0 {
				atRules = atRules[:len(atRules)-1]
			}

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selector = joinTokens(data, parser.Values())

		case css.EndRulesetGrammar:
			selector = ""

		case css.DeclarationGrammar:
			add(string(data), parser.Values())

		case css.CustomPropertyGrammar:
			var value []byte
			for _, t := range parser.Values() {
				value = append(value, t.Data...)
			}
			add(string(data), lexValue(value))
		}
	}
}

type found struct {
	raw   string
	color colors.Color
}

// scanTokens walks declaration value tokens. Functions which are not colors
// themselves (gradients, var(), etc.) are descended into.
func (p *Parser) scanTokens(property string, tokens []css.Token, sheet *Sheet) []found {
	var res []found
	named := p.named && IsColorProperty(property)

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.TokenType {
		case css.HashToken:
			if c, ok := colors.Parse(string(t.Data)); ok {
				res = append(res, found{raw: string(t.Data), color: c})
			}

		case css.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(string(t.Data), "("))
			if !colorFunctions[name] {
				continue
			}
			end := closingParen(tokens, i)
			raw := joinTokens(nil, tokens[i:end+1])
			i = end
			if c, ok := colors.Parse(raw); ok {
				res = append(res, found{raw: raw, color: c})
				continue
			}
			p.log.Debug("Unsupported color value", zap.String("property", property), zap.String("value", raw))
			if sheet != nil {
				sheet.Warnings = append(sheet.Warnings, "unsupported color value in "+property+": "+raw)
			}

		case css.IdentToken:
			if !named {
				continue
			}
			if c, ok := colors.Lookup(string(t.Data)); ok {
				res = append(res, found{raw: string(t.Data), color: c})
			}
		}
	}
	return res
}

// closingParen returns index of the token closing function started at
// tokens[start], or last index for unterminated functions.
func closingParen(tokens []css.Token, start int) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].TokenType {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(tokens) - 1
}

// lexValue tokenizes raw value text the same way parser does for regular
// declarations.
func lexValue(value []byte) []css.Token {
	l := css.NewLexer(parse.NewInputBytes(value))
	var tokens []css.Token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return tokens
		case css.CommentToken:
			continue
		}
		tokens = append(tokens, css.Token{TokenType: tt, Data: parse.Copy(data)})
	}
}

// joinTokens restores source text from tokens with whitespace collapsed.
func joinTokens(data []byte, tokens []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			sb.WriteByte(' ')
			continue
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}
