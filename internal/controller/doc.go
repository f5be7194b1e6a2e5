// Package controller holds the two stateful pieces of the portfolio page.
//
//   - NavigationController: the mobile-menu flag of the navigation bar
//   - ProjectDetailController: the modal flag of one project card
//
// Each controller owns exactly one boolean and exposes named transitions,
// so the logic runs without any rendering environment. Controllers never
// share state; every project card gets its own ProjectDetailController.
package controller
