package common

// PreviewLength is the number of leading bytes shown when a salt or hash is
// rendered for inspection.
const PreviewLength = 16
