// Command tareval compares a machine-translated SQuAD dataset against a
// human-translated reference and reports corpus BLEU.
package main
