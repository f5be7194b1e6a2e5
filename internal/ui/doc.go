// Package ui is the terminal presentation of the portfolio, built on Bubble Tea.
//
// Core pieces:
//   - View: a region with its own model, update, view (Elm-style)
//   - NavBar: renders the NavigationController; inline when wide, behind a toggle when narrow
//   - Page: the scrolling document; implements controller.Scroller via section anchors
//   - ProjectModal: the detail overlay of one card, driven by its ProjectDetailController
//   - Overlay: modal views with dismiss keys; the topmost receives input first
//   - FocusManager: which region (page, open menu, contact form) gets keys
//
// Controllers decide state; this package only renders it and classifies
// input into controller operations.
package ui
