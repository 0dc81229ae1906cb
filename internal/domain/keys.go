package domain

// KeyPrefix namespaces every key improvdex writes to the shared store.
const KeyPrefix = "improvdex:"
