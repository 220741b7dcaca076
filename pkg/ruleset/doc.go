// Package ruleset loads validation rule sets and their custom messages from
// YAML or JSON documents, keeping fields in document order.
package ruleset
