/*
Package wallet manages per-user ledgers: a cached balance plus an
append-only transaction history.

Every balance mutation pairs the balance update with a transaction insert
inside one database transaction, so the stored balance always matches the
sum of the ledger by construction. Deposits and withdrawals are simulated;
no external payment gateway is contacted.
*/
package wallet
