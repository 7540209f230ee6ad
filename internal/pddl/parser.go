package pddl

import (
	"fmt"
	"os"
	"strings"
)

// ParseDomainFile reads and parses a domain description from disk.
func ParseDomainFile(path string) (*Domain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading domain file: %w", err)
	}
	return parseDomain(path, data)
}

// ParseDomain parses a domain description from a byte slice.
func ParseDomain(src []byte) (*Domain, error) {
	return parseDomain("", src)
}

// ParseProblemFile reads and parses a problem description from disk.
func ParseProblemFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem file: %w", err)
	}
	return parseProblem(path, data)
}

// ParseProblem parses a problem description from a byte slice.
func ParseProblem(src []byte) (*Problem, error) {
	return parseProblem("", src)
}

type parser struct {
	lex  *lexer
	file string
	tok  token
}

func newParser(file string, src []byte) *parser {
	p := &parser{lex: newLexer(src), file: file}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.lex.next()
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{
		File:    p.file,
		Line:    p.tok.line,
		Column:  p.tok.col,
		Message: fmt.Sprintf(format, args...),
	}
}

func (p *parser) describe() string {
	switch p.tok.kind {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	default:
		return fmt.Sprintf("%q", p.tok.text)
	}
}

func (p *parser) expectLParen() error {
	if p.tok.kind != tokLParen {
		return p.errorf(`expected "(", found %s`, p.describe())
	}
	p.advance()
	return nil
}

func (p *parser) expectRParen() error {
	if p.tok.kind != tokRParen {
		return p.errorf(`expected ")", found %s`, p.describe())
	}
	p.advance()
	return nil
}

func (p *parser) expectSymbol(want string) error {
	if p.tok.kind != tokSymbol || p.tok.text != want {
		return p.errorf("expected %q, found %s", want, p.describe())
	}
	p.advance()
	return nil
}

func (p *parser) symbol() (string, error) {
	if p.tok.kind != tokSymbol {
		return "", p.errorf("expected a name, found %s", p.describe())
	}
	text := p.tok.text
	p.advance()
	return text, nil
}

func parseDomain(file string, src []byte) (*Domain, error) {
	p := newParser(file, src)
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	if err := p.expectSymbol("define"); err != nil {
		return nil, err
	}
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	if err := p.expectSymbol("domain"); err != nil {
		return nil, err
	}
	name, err := p.symbol()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}

	d := &Domain{Name: name}
	for p.tok.kind == tokLParen {
		p.advance()
		section, err := p.symbol()
		if err != nil {
			return nil, err
		}
		switch section {
		case ":requirements":
			if err := p.parseRequirements(d); err != nil {
				return nil, err
			}
		case ":types":
			if err := p.parseTypes(d); err != nil {
				return nil, err
			}
		case ":predicates":
			if err := p.parsePredicates(d); err != nil {
				return nil, err
			}
		case ":action":
			act, err := p.parseAction()
			if err != nil {
				return nil, err
			}
			d.Actions = append(d.Actions, act)
		default:
			return nil, p.errorf("unsupported domain section %q", section)
		}
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected content after domain definition")
	}
	return d, nil
}

func (p *parser) parseRequirements(d *Domain) error {
	for p.tok.kind == tokSymbol {
		switch p.tok.text {
		case ":strips", ":typing":
			d.Requirements = append(d.Requirements, p.tok.text)
			p.advance()
		default:
			return p.errorf("unsupported requirement %q", p.tok.text)
		}
	}
	return p.expectRParen()
}

func (p *parser) parseTypes(d *Domain) error {
	names, err := p.parseTypedList(false)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(names))
	for _, tn := range names {
		if !seen[tn.Name] {
			seen[tn.Name] = true
			d.Types = append(d.Types, tn.Name)
		}
	}
	// A parent type mentioned only after '-' is implicitly declared.
	for _, tn := range names {
		if tn.Type != "object" && !seen[tn.Type] {
			seen[tn.Type] = true
			d.Types = append(d.Types, tn.Type)
		}
	}
	return p.expectRParen()
}

func (p *parser) parsePredicates(d *Domain) error {
	for p.tok.kind == tokLParen {
		p.advance()
		name, err := p.symbol()
		if err != nil {
			return err
		}
		params, err := p.parseTypedList(true)
		if err != nil {
			return err
		}
		if err := p.expectRParen(); err != nil {
			return err
		}
		d.Predicates = append(d.Predicates, Predicate{Name: name, Params: params})
	}
	return p.expectRParen()
}

func (p *parser) parseAction() (Action, error) {
	name, err := p.symbol()
	if err != nil {
		return Action{}, err
	}
	act := Action{Name: name}
	for p.tok.kind == tokSymbol {
		key := p.tok.text
		p.advance()
		switch key {
		case ":parameters":
			if err := p.expectLParen(); err != nil {
				return Action{}, err
			}
			params, err := p.parseTypedList(true)
			if err != nil {
				return Action{}, err
			}
			if err := p.expectRParen(); err != nil {
				return Action{}, err
			}
			act.Parameters = params
		case ":precondition":
			pre, _, err := p.parseFormula(false)
			if err != nil {
				return Action{}, err
			}
			act.Preconditions = pre
		case ":effect":
			add, del, err := p.parseFormula(true)
			if err != nil {
				return Action{}, err
			}
			act.Additions = add
			act.Deletions = del
		default:
			return Action{}, p.errorf("unsupported action keyword %q", key)
		}
	}
	if err := p.expectRParen(); err != nil {
		return Action{}, err
	}
	return act, nil
}

// parseTypedList reads `name* (- type name*)*` up to, but not including, the
// closing parenthesis. Names without a trailing type annotation are typed
// "object". When wantVars is set, every name must be a '?' variable.
func (p *parser) parseTypedList(wantVars bool) ([]TypedName, error) {
	var out []TypedName
	pending := 0
	for p.tok.kind == tokSymbol {
		text := p.tok.text
		if text == "-" {
			if pending == 0 {
				return nil, p.errorf("type annotation without preceding names")
			}
			p.advance()
			typ, err := p.symbol()
			if err != nil {
				return nil, err
			}
			for i := len(out) - pending; i < len(out); i++ {
				out[i].Type = typ
			}
			pending = 0
			continue
		}
		if wantVars && !strings.HasPrefix(text, "?") {
			return nil, p.errorf("parameter %q must start with '?'", text)
		}
		if !wantVars && strings.HasPrefix(text, "?") {
			return nil, p.errorf("name %q must not start with '?'", text)
		}
		out = append(out, TypedName{Name: text, Type: "object"})
		pending++
		p.advance()
	}
	return out, nil
}

// parseFormula reads a conjunction group: either `(and literal*)` or a bare
// literal. Negated literals are rejected unless negAllowed is set.
func (p *parser) parseFormula(negAllowed bool) (pos, neg []Atom, err error) {
	if err := p.expectLParen(); err != nil {
		return nil, nil, err
	}
	if p.tok.kind == tokSymbol && p.tok.text == "and" {
		p.advance()
		for p.tok.kind == tokLParen {
			p.advance()
			atom, negated, err := p.parseLiteralBody(negAllowed)
			if err != nil {
				return nil, nil, err
			}
			if negated {
				neg = append(neg, atom)
			} else {
				pos = append(pos, atom)
			}
		}
		if err := p.expectRParen(); err != nil {
			return nil, nil, err
		}
		return pos, neg, nil
	}
	atom, negated, err := p.parseLiteralBody(negAllowed)
	if err != nil {
		return nil, nil, err
	}
	if negated {
		return nil, []Atom{atom}, nil
	}
	return []Atom{atom}, nil, nil
}

// parseLiteralBody reads the remainder of a literal whose opening parenthesis
// has already been consumed: `pred arg* )` or `not ( pred arg* ) )`.
func (p *parser) parseLiteralBody(negAllowed bool) (Atom, bool, error) {
	if p.tok.kind == tokSymbol && p.tok.text == "not" {
		if !negAllowed {
			return Atom{}, false, p.errorf("negated atoms are only allowed in effects")
		}
		p.advance()
		if err := p.expectLParen(); err != nil {
			return Atom{}, false, err
		}
		atom, err := p.parseAtomBody()
		if err != nil {
			return Atom{}, false, err
		}
		if err := p.expectRParen(); err != nil {
			return Atom{}, false, err
		}
		return atom, true, nil
	}
	atom, err := p.parseAtomBody()
	return atom, false, err
}

// parseAtomBody reads `pred arg* )` with the opening parenthesis already
// consumed.
func (p *parser) parseAtomBody() (Atom, error) {
	pred, err := p.symbol()
	if err != nil {
		return Atom{}, err
	}
	atom := Atom{Predicate: pred}
	for p.tok.kind == tokSymbol {
		atom.Args = append(atom.Args, p.tok.text)
		p.advance()
	}
	if err := p.expectRParen(); err != nil {
		return Atom{}, err
	}
	return atom, nil
}

func parseProblem(file string, src []byte) (*Problem, error) {
	p := newParser(file, src)
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	if err := p.expectSymbol("define"); err != nil {
		return nil, err
	}
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	if err := p.expectSymbol("problem"); err != nil {
		return nil, err
	}
	name, err := p.symbol()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}

	pb := &Problem{Name: name}
	for p.tok.kind == tokLParen {
		p.advance()
		section, err := p.symbol()
		if err != nil {
			return nil, err
		}
		switch section {
		case ":domain":
			domainName, err := p.symbol()
			if err != nil {
				return nil, err
			}
			pb.DomainName = domainName
			if err := p.expectRParen(); err != nil {
				return nil, err
			}
		case ":objects":
			objects, err := p.parseTypedList(false)
			if err != nil {
				return nil, err
			}
			if err := p.expectRParen(); err != nil {
				return nil, err
			}
			pb.Objects = objects
		case ":init":
			init, err := p.parseInit()
			if err != nil {
				return nil, err
			}
			pb.Init = init
		case ":goal":
			goal, _, err := p.parseFormula(false)
			if err != nil {
				return nil, err
			}
			pb.Goal = goal
			if err := p.expectRParen(); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf("unsupported problem section %q", section)
		}
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected content after problem definition")
	}
	return pb, nil
}

func (p *parser) parseInit() ([]Atom, error) {
	var init []Atom
	for p.tok.kind == tokLParen {
		p.advance()
		if p.tok.kind == tokSymbol && p.tok.text == "not" {
			return nil, p.errorf("negated atoms are not allowed in an initial state")
		}
		atom, err := p.parseAtomBody()
		if err != nil {
			return nil, err
		}
		init = append(init, atom)
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}
	return init, nil
}
