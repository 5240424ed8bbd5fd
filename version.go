package obf

// Version is this engine's semantic version, checked by internal/policy
// against a .obfpolicy.yaml file's `requires:` constraint so a policy
// written for a newer engine fails loudly instead of silently applying
// tier overrides the running engine doesn't understand yet.
const Version = "1.0.0"
