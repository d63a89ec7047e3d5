// Package services holds the business rules between the HTTP layer
// and the repositories.
//
// Services defined in this package:
//   - AuthService: registration and login
//   - UserService: own-profile fetch and partial update
//   - TermService: enrollment period management
//   - SelectionService: the single-active-term-selection flow
//   - DepartmentService: department lookups
//   - MessageService: account-to-account messages
package services
