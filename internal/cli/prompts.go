package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// PromptForCompany asks the user which company to research.
func PromptForCompany() (string, error) {
	var company string
	prompt := &survey.Input{
		Message: "Enter the company name (e.g. Apple, Petrobras):",
		Help:    "Free-text company name; the pipeline resolves the ticker itself",
	}

	err := survey.AskOne(prompt, &company, survey.WithValidator(func(val interface{}) error {
		if strings.TrimSpace(val.(string)) == "" {
			return fmt.Errorf("company name cannot be empty")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(company), nil
}

// ConfirmSaveReport asks whether the dossier should be written to disk.
func ConfirmSaveReport() (bool, error) {
	save := false
	prompt := &survey.Confirm{
		Message: "Save this report?",
		Default: false,
	}
	if err := survey.AskOne(prompt, &save); err != nil {
		return false, err
	}
	return save, nil
}
