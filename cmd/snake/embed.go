package main

import "embed"

//go:embed configs
var configFS embed.FS
