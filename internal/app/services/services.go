// Package services contains the business logic behind the HTTP surface.
//
// Services defined in this package:
//   - AuthService: credential verification and token issuance
//   - StudentService: personal and career data lookups
//   - ScheduleService: dated class schedule lookups
//
// Every lookup service applies the same ownership rule: a caller may only
// read records belonging to their own authenticated identifier.
package services
