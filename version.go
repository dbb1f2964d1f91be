package main

// Version is the build version reported by --version and embedded in the
// JSON report's software block.
const Version = "0.1.0"
