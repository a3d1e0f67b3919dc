package ui

import (
	"context"
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StudioFolio/internal/model"
)

const submitTimeout = 5 * time.Second

// errNoOutbox is reported when the inquiry database could not be opened at
// startup.
var errNoOutbox = errors.New("inquiry outbox is not available")

func (a *App) buildContactPage() fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Your name")
	emailEntry := widget.NewEntry()
	emailEntry.SetPlaceHolder("name@example.com")

	var scopeOptions []string
	for _, s := range model.Scopes {
		scopeOptions = append(scopeOptions, string(s))
	}
	scopeSelect := widget.NewSelect(scopeOptions, nil)
	scopeSelect.PlaceHolder = "Project scope (optional)"

	messageEntry := widget.NewMultiLineEntry()
	messageEntry.SetPlaceHolder("Tell us about your project")
	messageEntry.Wrapping = fyne.TextWrapWord
	messageEntry.SetMinRowsVisible(6)

	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord

	var submitBtn *widget.Button
	submitBtn = widget.NewButtonWithIcon("Send Inquiry", theme.MailSendIcon(), func() {
		q := model.NewInquiry(nameEntry.Text, emailEntry.Text, model.Scope(scopeSelect.Selected), messageEntry.Text)
		if err := q.Validate(); err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		submitBtn.Disable()
		defer submitBtn.Enable()
		if err := a.submitInquiry(q); err != nil {
			a.logger.Printf("submit inquiry: %v", err)
			status.SetText(inquiryFailed)
			dialog.ShowInformation("Inquiry", inquiryFailed, a.window)
			return
		}
		status.SetText(inquirySent)
		nameEntry.SetText("")
		emailEntry.SetText("")
		scopeSelect.ClearSelected()
		messageEntry.SetText("")
		dialog.ShowInformation("Inquiry", inquirySent, a.window)
	})
	submitBtn.Importance = widget.HighImportance

	form := container.NewGridWithColumns(2,
		widget.NewLabel("Name"), nameEntry,
		widget.NewLabel("Email"), emailEntry,
		widget.NewLabel("Scope"), scopeSelect,
	)

	return container.NewVBox(
		section(eyebrow("Contact"), heading(contactHeading), paragraph(contactBody)),
		widget.NewCard("Inquiry", "", container.NewVBox(
			form,
			widget.NewLabel("Message"),
			messageEntry,
			container.NewHBox(submitBtn),
			status,
		)),
	)
}

// submitInquiry hands q to the outbox.
func (a *App) submitInquiry(q model.Inquiry) error {
	if a.inquiries == nil {
		return errNoOutbox
	}
	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()
	return a.inquiries.Submit(ctx, q)
}
