package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

const (
	fieldLabel = iota
	fieldCategory
	fieldGrade
	fieldWeight
)

var formLabels = [...]string{
	fieldLabel:    "Course:   ",
	fieldCategory: "Semester: ",
	fieldGrade:    "Grade:    ",
	fieldWeight:   "Credits:  ",
}

type addForm struct {
	inputs []textinput.Model
	focus  int
	err    string
}

func newAddForm() addForm {
	label := textinput.New()
	label.Placeholder = "Linear Algebra"
	label.CharLimit = 64
	label.Width = 40
	label.Focus()

	category := textinput.New()
	category.Placeholder = "Semester 1"
	category.CharLimit = 32
	category.Width = 40

	grade := textinput.New()
	grade.Placeholder = fmt.Sprintf("%d-%d, encrypted before it leaves", models.MinGrade, models.MaxGrade)
	grade.CharLimit = 3
	grade.Width = 40
	grade.EchoMode = textinput.EchoPassword
	grade.EchoCharacter = '*'

	weight := textinput.New()
	weight.Placeholder = fmt.Sprintf("%d-%d", models.MinWeight, models.MaxWeight)
	weight.CharLimit = 2
	weight.Width = 40

	return addForm{inputs: []textinput.Model{label, category, grade, weight}}
}

func (f addForm) move(delta int) addForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// input parses the form. Range checks are left to the controller so the
// user sees one set of validation messages.
func (f addForm) input() (models.NewRecordInput, error) {
	label := strings.TrimSpace(f.inputs[fieldLabel].Value())
	if label == "" {
		return models.NewRecordInput{}, errors.New("course name is required")
	}

	grade, err := strconv.ParseInt(strings.TrimSpace(f.inputs[fieldGrade].Value()), 10, 64)
	if err != nil {
		return models.NewRecordInput{}, errors.New("grade must be a whole number")
	}

	weight, err := strconv.ParseInt(strings.TrimSpace(f.inputs[fieldWeight].Value()), 10, 64)
	if err != nil {
		return models.NewRecordInput{}, errors.New("credits must be a whole number")
	}

	return models.NewRecordInput{
		Label:    label,
		Category: strings.TrimSpace(f.inputs[fieldCategory].Value()),
		RawValue: grade,
		Weight:   weight,
	}, nil
}

func (f addForm) View() string {
	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(formLabels[i])
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
		b.WriteString("\n")
	}

	return renderPage("NEW TRANSCRIPT", b.String(), "tab/shift+tab: field  enter: submit  esc: cancel")
}
