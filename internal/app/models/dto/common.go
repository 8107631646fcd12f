package dto

// DefaultActor is recorded as createdBy/updatedBy when a request names no author.
const DefaultActor = "admin"
