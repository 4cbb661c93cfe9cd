package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/accbox/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type totpFormKind int

const (
	totpFormConfig totpFormKind = iota
	totpFormURI
)

const (
	fieldSecret = iota
	fieldType
	fieldAlgorithm
	fieldDigits
	fieldPeriod
	fieldIssuer
	fieldOffset
)

// totpFormModel edits the 2FA configuration of one account, either field
// by field or from an otpauth URI.
type totpFormModel struct {
	kind    totpFormKind
	account models.Account

	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newTOTPConfigForm(a models.Account) *totpFormModel {
	f := &totpFormModel{kind: totpFormConfig, account: a}
	f.add("Secret", "", "base32, or base64 for steam", textinput.EchoPassword)
	f.add("Type", string(models.OTPTypeTOTP), "totp | hotp | steam", textinput.EchoNormal)
	f.add("Algorithm", "SHA1", "SHA1 | SHA256 | SHA512", textinput.EchoNormal)
	f.add("Digits", strconv.Itoa(models.DefaultDigits), "6", textinput.EchoNormal)
	f.add("Period", strconv.Itoa(models.DefaultPeriod), "30", textinput.EchoNormal)
	f.add("Issuer", "", "optional", textinput.EchoNormal)
	f.add("Offset", "0", "seconds", textinput.EchoNormal)
	f.inputs[0].Focus()
	return f
}

func newTOTPURIForm(a models.Account) *totpFormModel {
	f := &totpFormModel{kind: totpFormURI, account: a}
	f.add("URI", "", "otpauth://totp/...", textinput.EchoNormal)
	f.inputs[0].CharLimit = 1024
	f.inputs[0].Focus()
	return f
}

func (f *totpFormModel) add(label, value, placeholder string, echo textinput.EchoMode) {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 48
	in.EchoMode = echo
	in.EchoCharacter = '*'
	in.SetValue(value)
	f.labels = append(f.labels, label)
	f.inputs = append(f.inputs, in)
}

func (f *totpFormModel) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *totpFormModel) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *totpFormModel) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// config reads the form. Empty numeric fields fall back to the defaults.
func (f *totpFormModel) config() (models.TOTPConfig, error) {
	digits, err := atoiOrZero(f.value(fieldDigits))
	if err != nil {
		return models.TOTPConfig{}, errBadNumber
	}
	period, err := atoiOrZero(f.value(fieldPeriod))
	if err != nil {
		return models.TOTPConfig{}, errBadNumber
	}
	offset, err := atoiOrZero(f.value(fieldOffset))
	if err != nil {
		return models.TOTPConfig{}, errBadNumber
	}

	return models.TOTPConfig{
		Secret:     f.value(fieldSecret),
		Type:       models.OTPType(strings.ToLower(f.value(fieldType))),
		Algorithm:  strings.ToUpper(f.value(fieldAlgorithm)),
		Digits:     digits,
		Period:     period,
		Issuer:     f.value(fieldIssuer),
		TimeOffset: int64(offset),
	}, nil
}

func (f *totpFormModel) uri() (string, error) {
	u := f.value(0)
	if u == "" {
		return "", errEmptyURI
	}
	return u, nil
}

func (f *totpFormModel) View() string {
	var b strings.Builder
	title := "2FA configuration: "
	if f.kind == totpFormURI {
		title = "Import otpauth URI: "
	}
	b.WriteString(viewTitle(title + f.account.DisplayName()))

	for i, in := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			label = titleStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", max(1, 11-len(f.labels[i]))))
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if f.submitting {
		b.WriteString("\nSaving...\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field │ enter: save │ esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
