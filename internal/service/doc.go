// Package service contains the business logic of the Accounts, Loans and
// Cards domains. It orchestrates the domain records and the store interfaces
// (defined in internal/store) to fulfill the create, fetch, update and delete
// use cases exposed by the API.
//
// Key components:
//
// 1. Service Interfaces:
//   - AccountService manages a customer together with the account it owns
//   - LoanService and CardService manage records keyed directly by mobile number
//
// 2. Use Case Implementations:
//   - Loans and Cards share one generic numbered-record implementation
//   - Identifiers are drawn by a NumberGenerator and re-drawn on collision
//
// 3. Dependency Management:
//   - Services receive stores and generators through constructor injection
//   - Services are stateless and safe for concurrent use
//
// 4. Error Handling:
//   - Expected conditions are reported as domain errors (AlreadyExists, NotFound)
//   - Storage failures are returned as-is for the API layer to translate
//
// The service layer depends on domain entities and store interfaces, never on
// specific storage implementations.
package service
