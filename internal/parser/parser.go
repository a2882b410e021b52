// Package parser turns a line of user input into a commands.Command.
package parser

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"scrolls/internal/blob"
	"scrolls/internal/commands"
	"scrolls/pkg/domain"
)

const (
	MessageUnknownCommand        = "Unknown command"
	MessageInvalidCommandFormat  = "Invalid command format! \n%s"
	MessageDuplicateFields       = "Multiple values specified for the following single-valued field(s): %s"
	MessageInvalidIndex          = "Index is not a non-zero unsigned integer."
	MessageInvalidDuration       = "Duration should be a non-negative whole number of hours."
	MessageInvalidStartDate      = "Start date should be of the format YYYY-MM-DD."
	MessageNoFieldToEditProvided = commands.MessageNotEdited
)

// ParseError is returned for input that does not form a command.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

func formatError(usage string) *ParseError {
	return &ParseError{Message: fmt.Sprintf(MessageInvalidCommandFormat, usage)}
}

// Parser maps command words and aliases to argument parsers.
type Parser struct {
	exports blob.Store
	now     func() time.Time
	words   map[string]func(args string) (commands.Command, error)
}

// Option configures a Parser.
type Option func(*Parser)

// WithExportStore sets the blob store export commands write to.
func WithExportStore(store blob.Store) Option {
	return func(p *Parser) { p.exports = store }
}

// New returns a Parser knowing every command word.
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	p.words = map[string]func(string) (commands.Command, error){
		commands.AddCommandWord:       parseAdd,
		commands.EditCommandWord:      parseEdit,
		commands.DeleteCommandWord:    parseDelete,
		commands.FindCommandWord:      parseFind,
		commands.ListCommandWord:      noArgs(commands.List{}),
		commands.ClearCommandWord:     noArgs(commands.Clear{}),
		commands.PairCommandWord:      parsePair,
		commands.UnpairCommandWord:    parseUnpair,
		commands.LogAddCommandWord:    parseLogAdd,
		commands.LogFindCommandWord:   parseLogFind,
		commands.LogDeleteCommandWord: parseLogDelete,
		commands.LogDelCommandWord:    parseLogDelete,
		commands.LogRmCommandWord:     parseLogDelete,
		commands.LogRemoveCommandWord: parseLogDelete,
		commands.UndoCommandWord:      noArgs(commands.Undo{}),
		commands.RedoCommandWord:      noArgs(commands.Redo{}),
		commands.ExitCommandWord:      noArgs(commands.Exit{}),
		commands.HelpCommandWord:      noArgs(commands.Help{Usage: HelpText()}),
		commands.ExportCommandWord: func(string) (commands.Command, error) {
			return commands.Export{Store: p.exports, Now: p.now}, nil
		},
		commands.ExportsCommandWord: noArgs(commands.Exports{Store: p.exports}),
		commands.ImportCommandWord: func(args string) (commands.Command, error) {
			key, err := exportKey(args, commands.ImportCommandWord)
			if err != nil {
				return nil, err
			}
			return commands.Import{Store: p.exports, Key: key}, nil
		},
		commands.ExportDeleteCommandWord: func(args string) (commands.Command, error) {
			key, err := exportKey(args, commands.ExportDeleteCommandWord)
			if err != nil {
				return nil, err
			}
			return commands.ExportDelete{Store: p.exports, Key: key}, nil
		},
	}
	return p
}

// Parse reads one line of input.
func (p *Parser) Parse(input string) (commands.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, formatError(usages[commands.HelpCommandWord])
	}
	word, args, _ := strings.Cut(trimmed, " ")
	parse, ok := p.words[strings.ToLower(word)]
	if !ok {
		return nil, &ParseError{Message: MessageUnknownCommand}
	}
	return parse(strings.TrimSpace(args))
}

// Words returns every accepted command word, aliases included, sorted.
func (p *Parser) Words() []string {
	out := make([]string, 0, len(p.words))
	for w := range p.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// exportKey accepts exactly one blob key, as listed by the exports command.
func exportKey(args, word string) (string, error) {
	if args == "" || strings.ContainsAny(args, " \t") {
		return "", formatError(usages[word])
	}
	return args, nil
}

func noArgs(cmd commands.Command) func(string) (commands.Command, error) {
	return func(string) (commands.Command, error) { return cmd, nil }
}

func parseAdd(args string) (commands.Command, error) {
	usage := usages[commands.AddCommandWord]
	am := tokenize(args, PrefixRole, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	for _, required := range []string{PrefixRole, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress} {
		if _, ok := am.value(required); !ok {
			return nil, formatError(usage)
		}
	}
	if am.preamble != "" {
		return nil, formatError(usage)
	}
	if err := singleValued(am, PrefixRole, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}
	role, _ := am.value(PrefixRole)
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}
	name, _ := am.value(PrefixName)
	phone, _ := am.value(PrefixPhone)
	email, _ := am.value(PrefixEmail)
	address, _ := am.value(PrefixAddress)
	p := domain.Person{Role: r}
	if p.Name, err = domain.NewName(name); err != nil {
		return nil, err
	}
	if p.Phone, err = domain.NewPhone(phone); err != nil {
		return nil, err
	}
	if p.Email, err = domain.NewEmail(email); err != nil {
		return nil, err
	}
	if p.Address, err = domain.NewAddress(address); err != nil {
		return nil, err
	}
	if p.Tags, err = parseTags(am.all(PrefixTag)); err != nil {
		return nil, err
	}
	return commands.Add{Person: p}, nil
}

func parseEdit(args string) (commands.Command, error) {
	usage := usages[commands.EditCommandWord]
	am := tokenize(args, PrefixRole, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag, PrefixNewRole)
	index, err := parseIndex(am.preamble)
	if err != nil {
		return nil, formatError(usage)
	}
	role, err := requiredRole(am, usage)
	if err != nil {
		return nil, err
	}
	if err := singleValued(am, PrefixRole, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixNewRole); err != nil {
		return nil, err
	}
	var d commands.EditDescriptor
	if v, ok := am.value(PrefixName); ok {
		name, err := domain.NewName(v)
		if err != nil {
			return nil, err
		}
		d.Name = &name
	}
	if v, ok := am.value(PrefixPhone); ok {
		phone, err := domain.NewPhone(v)
		if err != nil {
			return nil, err
		}
		d.Phone = &phone
	}
	if v, ok := am.value(PrefixEmail); ok {
		email, err := domain.NewEmail(v)
		if err != nil {
			return nil, err
		}
		d.Email = &email
	}
	if v, ok := am.value(PrefixAddress); ok {
		address, err := domain.NewAddress(v)
		if err != nil {
			return nil, err
		}
		d.Address = &address
	}
	if v, ok := am.value(PrefixNewRole); ok {
		r, err := domain.ParseRole(v)
		if err != nil {
			return nil, &ParseError{Message: err.Error()}
		}
		d.Role = &r
	}
	if raw := am.all(PrefixTag); len(raw) > 0 {
		// a lone empty t/ clears every tag
		var tags []domain.Tag
		if !(len(raw) == 1 && raw[0] == "") {
			if tags, err = parseTags(raw); err != nil {
				return nil, err
			}
		}
		d.Tags = &tags
	}
	if !d.IsAnyFieldEdited() {
		return nil, &ParseError{Message: MessageNoFieldToEditProvided}
	}
	return commands.Edit{Target: index, Role: role, Descriptor: d}, nil
}

func parseDelete(args string) (commands.Command, error) {
	usage := usages[commands.DeleteCommandWord]
	am := tokenize(args, PrefixRole)
	index, err := parseIndex(am.preamble)
	if err != nil {
		return nil, formatError(usage)
	}
	role, err := requiredRole(am, usage)
	if err != nil {
		return nil, err
	}
	return commands.Delete{Target: index, Role: role}, nil
}

func parseFind(args string) (commands.Command, error) {
	am := tokenize(args, PrefixRole, PrefixTag)
	if err := singleValued(am, PrefixRole); err != nil {
		return nil, err
	}
	cmd := commands.Find{SearchVolunteer: true, SearchBefriendee: true}
	if v, ok := am.value(PrefixRole); ok {
		role, err := domain.ParseRole(v)
		if err != nil {
			return nil, &ParseError{Message: err.Error()}
		}
		cmd.SearchVolunteer = role.IsVolunteer()
		cmd.SearchBefriendee = !role.IsVolunteer()
	}
	tags, err := parseTags(am.all(PrefixTag))
	if err != nil {
		return nil, err
	}
	cmd.Name = domain.NewNameContainsKeywordsPredicate(strings.Fields(am.preamble))
	cmd.Tags = domain.NewTagListContainsTagsPredicate(tags)
	return cmd, nil
}

func parsePair(args string) (commands.Command, error) {
	v, b, err := twoIndices(args, usages[commands.PairCommandWord])
	if err != nil {
		return nil, err
	}
	return commands.Pair{VolunteerIndex: v, BefriendeeIndex: b}, nil
}

func parseUnpair(args string) (commands.Command, error) {
	v, b, err := twoIndices(args, usages[commands.UnpairCommandWord])
	if err != nil {
		return nil, err
	}
	return commands.Unpair{VolunteerIndex: v, BefriendeeIndex: b}, nil
}

func parseLogAdd(args string) (commands.Command, error) {
	usage := usages[commands.LogAddCommandWord]
	am := tokenize(args, PrefixTitle, PrefixStartDate, PrefixDuration, PrefixRemarks)
	v, b, err := twoIndices(am.preamble, usage)
	if err != nil {
		return nil, err
	}
	for _, required := range []string{PrefixTitle, PrefixStartDate, PrefixDuration} {
		if _, ok := am.value(required); !ok {
			return nil, formatError(usage)
		}
	}
	if err := singleValued(am, PrefixTitle, PrefixStartDate, PrefixDuration, PrefixRemarks); err != nil {
		return nil, err
	}
	title, _ := am.value(PrefixTitle)
	rawDate, _ := am.value(PrefixStartDate)
	start, err := time.ParseInLocation(commands.DateLayout, rawDate, time.UTC)
	if err != nil {
		return nil, &ParseError{Message: MessageInvalidStartDate}
	}
	rawDuration, _ := am.value(PrefixDuration)
	duration, err := strconv.Atoi(rawDuration)
	if err != nil || duration < 0 {
		return nil, &ParseError{Message: MessageInvalidDuration}
	}
	remarks, _ := am.value(PrefixRemarks)
	return commands.LogAdd{
		VolunteerIndex:  v,
		BefriendeeIndex: b,
		Title:           title,
		StartDate:       start,
		Duration:        duration,
		Remarks:         remarks,
	}, nil
}

func parseLogFind(args string) (commands.Command, error) {
	if args == "" {
		return commands.LogFind{}, nil
	}
	usage := usages[commands.LogFindCommandWord]
	am := tokenize(args, PrefixRole)
	index, err := parseIndex(am.preamble)
	if err != nil {
		return nil, formatError(usage)
	}
	role, err := requiredRole(am, usage)
	if err != nil {
		return nil, err
	}
	return commands.LogFind{Target: &index, Role: role}, nil
}

func parseLogDelete(args string) (commands.Command, error) {
	index, err := parseIndex(args)
	if err != nil {
		return nil, formatError(usages[commands.LogDeleteCommandWord])
	}
	return commands.LogDelete{Target: index}, nil
}

func parseIndex(raw string) (commands.Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Message: MessageInvalidIndex}
	}
	i, err := commands.IndexFromOneBased(n)
	if err != nil {
		return 0, &ParseError{Message: MessageInvalidIndex}
	}
	return i, nil
}

func twoIndices(raw, usage string) (commands.Index, commands.Index, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return 0, 0, formatError(usage)
	}
	a, err := parseIndex(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseIndex(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func requiredRole(am argMap, usage string) (domain.Role, error) {
	v, ok := am.value(PrefixRole)
	if !ok {
		return "", formatError(usage)
	}
	role, err := domain.ParseRole(v)
	if err != nil {
		return "", &ParseError{Message: err.Error()}
	}
	return role, nil
}

func parseTags(raw []string) ([]domain.Tag, error) {
	var tags []domain.Tag
	for _, r := range raw {
		t, err := domain.NewTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func singleValued(am argMap, prefixes ...string) error {
	if dups := am.duplicated(prefixes...); len(dups) > 0 {
		return &ParseError{Message: fmt.Sprintf(MessageDuplicateFields, strings.Join(dups, " "))}
	}
	return nil
}

// IsParseError reports whether err came from malformed input.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
