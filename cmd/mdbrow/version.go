package main

// Version is the mdbrow release version.
const Version = "v0.1.0"
