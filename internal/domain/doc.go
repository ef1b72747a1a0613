// Package domain contains the persisted records of the accounts, loans and
// cards domains, the defaults applied when a record is created, and the error
// kinds the service layer signals. It is independent of any storage or
// delivery mechanism.
package domain
