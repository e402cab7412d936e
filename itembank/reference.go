package itembank

import _ "embed"

//go:embed testdata/bank.yaml
var referenceBankYAML []byte

// ReferenceBank returns the module's built-in 24-item synthetic HEXACO bank
// (SPEC_FULL.md Part D). It is parsed and validated fresh on every call so
// callers may treat the returned *Bank as exclusively theirs; the underlying
// YAML is embedded at build time and never touches disk.
func ReferenceBank() (*Bank, error) {
	return Load(referenceBankYAML)
}
