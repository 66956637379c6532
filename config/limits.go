package config

// MaxListResults caps unpaginated list reads. This is a pragmatic limit, not
// a paging contract.
const MaxListResults = 1000
