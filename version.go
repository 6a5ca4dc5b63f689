package main

// Overridden at build time with -ldflags "-X main.version=...".
var version = "devel"
