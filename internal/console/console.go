// Package console implements the interactive menu loop of the contact book.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/vyrodovalexey/contactbook/internal/metrics"
	"github.com/vyrodovalexey/contactbook/internal/model"
	"github.com/vyrodovalexey/contactbook/internal/store"
)

// ErrInputClosed is returned by Run when the input stream ends before Quit.
var ErrInputClosed = errors.New("input closed")

// MaxLineSize is the longest input line accepted (1MB).
const MaxLineSize = 1024 * 1024

// Operation is a numbered menu entry.
type Operation int

// Menu operations in the order they are listed.
const (
	OpAdd Operation = iota + 1
	OpDelete
	OpEdit
	OpList
	OpSearch
	OpQuit
)

// String returns the operation name used in logs and metrics.
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	case OpEdit:
		return "edit"
	case OpList:
		return "list"
	case OpSearch:
		return "search"
	case OpQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// User-facing messages.
const (
	menuText = `
---------------------- Contact Management --------------------
|                       1. Add a contact                     |
|                     2. Delete a contact                    |
|                      3. Edit a contact                     |
|                    4. Show all contacts                    |
|                     5. Search contacts                     |
|                          6. Quit                           |
--------------------------------------------------------------
`
	msgEnterNumber      = "Invalid input. Please enter a number."
	msgInvalidOperation = "Invalid operation! Please select a valid option."
	msgInvalidPhone     = "Invalid phone number. Use the format PP-XXX-XX-XX with prefix one of: %s."
	msgAdded            = "Contact added successfully. The ID of the newly added contact : %d"
	msgDeleted          = "Contact deleted successfully."
	msgUpdated          = "Contact updated successfully."
	msgNotFound         = "Contact not found."
	msgNoContacts       = "No contacts available."
	msgListHeader       = "\n--- Contact List ---"
	msgSearchMenu       = "Search by: 1. Name, 2. Surname, 3. Phone Number"
	msgInvalidSearch    = "Invalid search method."
	msgNoMatches        = "No contacts found with the given %s."
	msgFarewell         = "Thank you for using the contact management system!"
)

// Console drives the menu loop over a Store.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	store   store.Store
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// New creates a Console reading from in and writing to out.
// rec may be nil to disable metrics.
func New(in io.Reader, out io.Writer, s store.Store, logger *zap.Logger, rec *metrics.Recorder) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)

	return &Console{
		in:      scanner,
		out:     out,
		store:   s,
		logger:  logger,
		metrics: rec,
	}
}

// Run shows the menu and dispatches operations until the user quits,
// the input ends, or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.logger.Debug("console started")
	c.refreshContactsGauge(ctx)

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("console: %w", ctx.Err())
		default:
		}

		c.print(menuText)

		choice, err := c.promptInt("Choose an operation (1-6): ")
		if err != nil {
			return err
		}

		op := Operation(choice)
		if op == OpQuit {
			c.println(msgFarewell)
			c.metrics.Operation(op.String(), metrics.ResultSuccess)
			c.logger.Debug("console finished")
			return nil
		}

		if err := c.dispatch(ctx, op); err != nil {
			c.logger.Error("operation failed",
				zap.String("operation", op.String()),
				zap.Error(err),
			)
			return err
		}
	}
}

// dispatch runs a single non-quit operation.
func (c *Console) dispatch(ctx context.Context, op Operation) error {
	switch op {
	case OpAdd:
		return c.addContact(ctx)
	case OpDelete:
		return c.deleteContact(ctx)
	case OpEdit:
		return c.editContact(ctx)
	case OpList:
		return c.listContacts(ctx)
	case OpSearch:
		return c.searchContacts(ctx)
	default:
		c.println(msgInvalidOperation)
		c.metrics.InvalidInput(metrics.InputOperation)
		c.logger.Debug("invalid operation", zap.Int("choice", int(op)))
		return nil
	}
}

func (c *Console) addContact(ctx context.Context) error {
	contact, err := c.promptContact("First Name: ", "Surname: ", "Phone Number: ")
	if err != nil {
		return err
	}

	added, err := c.store.Add(ctx, contact)
	if err != nil {
		return fmt.Errorf("adding contact: %w", err)
	}

	c.printf(msgAdded+"\n", added.ID)
	c.metrics.Operation(OpAdd.String(), metrics.ResultSuccess)
	c.refreshContactsGauge(ctx)
	c.logger.Debug("contact added", zap.Int("contact_id", added.ID))

	return nil
}

func (c *Console) deleteContact(ctx context.Context) error {
	id, err := c.promptInt("Enter the ID of the contact to delete: ")
	if err != nil {
		return err
	}

	err = c.store.Delete(ctx, id)
	switch {
	case isNotFound(err):
		c.println(msgNotFound)
		c.metrics.Operation(OpDelete.String(), metrics.ResultNotFound)
		c.logger.Debug("contact to delete not found", zap.Int("contact_id", id))
		return nil
	case err != nil:
		return fmt.Errorf("deleting contact %d: %w", id, err)
	}

	c.println(msgDeleted)
	c.metrics.Operation(OpDelete.String(), metrics.ResultSuccess)
	c.refreshContactsGauge(ctx)
	c.logger.Debug("contact deleted", zap.Int("contact_id", id))

	return nil
}

func (c *Console) editContact(ctx context.Context) error {
	id, err := c.promptInt("Enter the ID of the contact to edit: ")
	if err != nil {
		return err
	}

	// Existence is checked before asking for the new values.
	if _, err := c.store.Get(ctx, id); err != nil {
		return c.editNotFound(id, err)
	}

	contact, err := c.promptContact("New First Name: ", "New Surname: ", "New Phone Number: ")
	if err != nil {
		return err
	}

	if _, err := c.store.Edit(ctx, id, contact); err != nil {
		return c.editNotFound(id, err)
	}

	c.println(msgUpdated)
	c.metrics.Operation(OpEdit.String(), metrics.ResultSuccess)
	c.logger.Debug("contact updated", zap.Int("contact_id", id))

	return nil
}

// editNotFound reports a missing contact, or wraps any other store error.
func (c *Console) editNotFound(id int, err error) error {
	if !isNotFound(err) {
		return fmt.Errorf("editing contact %d: %w", id, err)
	}

	c.println(msgNotFound)
	c.metrics.Operation(OpEdit.String(), metrics.ResultNotFound)
	c.logger.Debug("contact to edit not found", zap.Int("contact_id", id))

	return nil
}

func (c *Console) listContacts(ctx context.Context) error {
	contacts, err := c.store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing contacts: %w", err)
	}

	if len(contacts) == 0 {
		c.println(msgNoContacts)
		c.metrics.Operation(OpList.String(), metrics.ResultEmpty)
		return nil
	}

	c.println(msgListHeader)
	c.printContacts(contacts)
	c.metrics.Operation(OpList.String(), metrics.ResultSuccess)
	c.logger.Debug("contacts listed", zap.Int("results", len(contacts)))

	return nil
}

func (c *Console) searchContacts(ctx context.Context) error {
	c.println(msgSearchMenu)

	choice, err := c.promptInt("Choose a search method (1-3): ")
	if err != nil {
		return err
	}

	field, err := model.ParseSearchField(choice)
	if err != nil {
		c.println(msgInvalidSearch)
		c.metrics.InvalidInput(metrics.InputSearchMethod)
		c.metrics.Operation(OpSearch.String(), metrics.ResultInvalid)
		c.logger.Debug("invalid search method", zap.Int("choice", choice))
		return nil
	}

	term, err := c.promptText(fmt.Sprintf("Enter the %s: ", field))
	if err != nil {
		return err
	}

	results, err := c.store.Search(ctx, field, term)
	if err != nil {
		return fmt.Errorf("searching contacts: %w", err)
	}

	c.logger.Debug("contacts searched",
		zap.Stringer("field", field),
		zap.Int("results", len(results)),
	)

	if len(results) == 0 {
		c.printf(msgNoMatches+"\n", field)
		c.metrics.Operation(OpSearch.String(), metrics.ResultEmpty)
		return nil
	}

	c.printContacts(results)
	c.metrics.Operation(OpSearch.String(), metrics.ResultSuccess)

	return nil
}

// refreshContactsGauge records the current store size. Failures only affect
// metrics and are logged.
func (c *Console) refreshContactsGauge(ctx context.Context) {
	if c.metrics == nil {
		return
	}

	n, err := c.store.Len(ctx)
	if err != nil {
		c.logger.Warn("failed to count contacts", zap.Error(err))
		return
	}
	c.metrics.SetContacts(n)
}

func (c *Console) printContacts(contacts []model.Contact) {
	for _, contact := range contacts {
		c.println(contact.String())
	}
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// isNotFound reports whether err means no contact exists for the requested ID.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID)
}

// prefixList renders the accepted phone prefixes for messages.
func prefixList() string {
	return strings.Join(model.PhonePrefixes, ", ")
}

// parseInt accepts an optionally signed decimal integer with surrounding
// whitespace.
func parseInt(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("parsing number: %w", err)
	}
	return n, nil
}
