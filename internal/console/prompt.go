package console

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vyrodovalexey/contactbook/internal/metrics"
	"github.com/vyrodovalexey/contactbook/internal/model"
)

// readLine prompts with message and returns the next input line without its
// line terminator.
func (c *Console) readLine(message string) (string, error) {
	c.print(message)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("reading input: %w", ErrInputClosed)
	}

	return c.in.Text(), nil
}

// promptInt repeats message until the input is an integer. The value is not
// range-checked.
func (c *Console) promptInt(message string) (int, error) {
	for {
		line, err := c.readLine(message)
		if err != nil {
			return 0, err
		}

		n, err := parseInt(line)
		if err == nil {
			return n, nil
		}

		c.println(msgEnterNumber)
		c.metrics.InvalidInput(metrics.InputNumber)
		c.logger.Debug("rejected number", zap.String("input", line))
	}
}

// promptText repeats message until the trimmed input is non-empty and
// returns the trimmed value.
func (c *Console) promptText(message string) (string, error) {
	for {
		line, err := c.readLine(message)
		if err != nil {
			return "", err
		}

		if text := strings.TrimSpace(line); text != "" {
			return text, nil
		}

		c.metrics.InvalidInput(metrics.InputText)
	}
}

// promptPhone repeats message until the input is a valid phone number.
// The accepted line is returned as typed.
func (c *Console) promptPhone(message string) (string, error) {
	for {
		line, err := c.readLine(message)
		if err != nil {
			return "", err
		}

		err = model.ValidatePhone(line)
		if err == nil {
			return line, nil
		}

		c.printf(msgInvalidPhone+"\n", prefixList())
		c.metrics.InvalidInput(metrics.InputPhone)
		c.logger.Debug("rejected phone number",
			zap.String("input", line),
			zap.Error(err),
		)
	}
}

// promptContact collects the three editable contact fields.
func (c *Console) promptContact(namePrompt, surnamePrompt, phonePrompt string) (*model.Contact, error) {
	name, err := c.promptText(namePrompt)
	if err != nil {
		return nil, err
	}

	surname, err := c.promptText(surnamePrompt)
	if err != nil {
		return nil, err
	}

	phone, err := c.promptPhone(phonePrompt)
	if err != nil {
		return nil, err
	}

	return &model.Contact{
		Name:    name,
		Surname: surname,
		Phone:   phone,
	}, nil
}
