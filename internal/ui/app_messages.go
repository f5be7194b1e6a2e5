package ui

import "folio/internal/contact"

// followLinkMsg asks the app to route href through the navigation Linker.
type followLinkMsg struct {
	URL string
}

// linkOpenedMsg reports the result of handing a URL to the browser.
type linkOpenedMsg struct {
	URL string
	Err error
}

// contactDraftMsg carries a validated contact message.
type contactDraftMsg struct {
	Message contact.Message
}

// contactLeftMsg is sent when the contact form gives up keyboard focus.
type contactLeftMsg struct{}

// clipboardMsg reports the result of copying a draft to the clipboard.
type clipboardMsg struct {
	URI string
	Err error
}

// toastExpiredMsg removes a toast once its time is up.
type toastExpiredMsg struct {
	ID int
}
