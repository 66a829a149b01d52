package backend

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/voidpointergroup/complate/internal/config"
)

// Prompt is the line-based interactive backend. It asks one question per
// call on the controlling terminal.
type Prompt struct{}

// SelectTemplate presents the candidates as a select list.
func (p *Prompt) SelectTemplate(candidates []string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message: "Template",
		Options: candidates,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", translateErr(err)
	}
	return selected, nil
}

// Query asks for the variable's value. An empty line means "no answer",
// letting resolution continue down the chain.
func (p *Prompt) Query(v config.VariableSpec) (string, bool, error) {
	var answer string
	prompt := &survey.Input{
		Message: v.PromptText(),
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", false, translateErr(err)
	}
	if answer == "" {
		return "", false, nil
	}
	return answer, true, nil
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompt) Confirm(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, translateErr(err)
	}
	return confirmed, nil
}

func translateErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCancelled
	}
	return err
}
