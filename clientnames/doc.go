// Package clientnames copies client display names from a source network to a
// destination network. Networks are picked by tag, clients are paired by MAC
// address, and each pair becomes one provisioning call on the destination.
package clientnames
