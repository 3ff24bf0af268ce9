// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: glyph/tables.go
// Summary: Immutable, priority-ordered rule tables for entry classification.

package glyph

// Generic glyphs used by the type short-circuits and fallback heuristics.
const (
	Folder     = "📁"
	Link       = "🔗"
	LinkFolder = "🔗📁"
	Config     = "⚙️"
	Executable = "💾"
	Text       = "📝"
	Unknown    = "❓"
	Device     = "🔧"
)

// rule pairs a pattern with the glyph it selects. Tables are ordered slices,
// scanned front to back; the first match wins. They never mutate after
// process start, so no synchronization applies.
type rule struct {
	pattern string
	glyph   string
}

// prefixNameTable matches the start of an entry name. It outranks every
// non-device table because some names must beat their own extension
// (LICENSE-2.0.txt is a license, not a text file).
var prefixNameTable = []rule{
	{"vmlinuz", "🐧"},
	{"grub", "🥾"},
	{"shadow", "🕶️"},
	{"fstab", "⬜"},
	{"LICENSE", "⚖️"},
	{"COPYING", "⚖️"},
}

// exactNameTable matches a full entry name, case-insensitively.
var exactNameTable = []rule{
	{"Makefile", "🧰"},
	{"Makefile.am", "🏭"},
	{"configure.ac", "🏭"},
	{"CMakeLists.txt", "🏭"},
	{"meson.build", "🏭"},
	{".gitignore", "🙈"},
	{".dockerignore", "🙈"},
	{".hgignore", "🙈"},
	{".npmignore", "🙈"},
	{".bzrignore", "🙈"},
	{".eslintignore", "🙈"},
	{".terraformignore", "🙈"},
	{".prettierignore", "🙈"},
	{".p4ignore", "🙈"},
	{"Dockerfile", "🐳"},
	{".gitlab-ci.yml", "🦊"},
	{".travis.yml", "⛑️"},
	{"swagger.yaml", "🧣"},
	{"Jenkinsfile", "🔴"},
	{"tags", "🏷️"},
	{"LICENSE", "⚖️"},
	{".ninja_deps", "🥷"},
	{".ninja_log", "🥷"},
}

// contentTable matches the first line of a regular file against literal
// interpreter directives.
var contentTable = []rule{
	{"#!/bin/sh", "🐚"},
	{"#!/usr/bin/sh", "🐚"},
	{"#!/usr/bin/env sh", "🐚"},
	{"#!/bin/bash", "💰"},
	{"#!/usr/bin/bash", "💰"},
	{"#!/usr/bin/env bash", "💰"},
	{"#!/bin/dash", "🐚"},
	{"#!/usr/bin/dash", "🐚"},
	{"#!/usr/bin/env dash", "🐚"},
	{"#!/bin/zsh", "🆉"},
	{"#!/usr/bin/zsh", "🆉"},
	{"#!/usr/bin/env zsh", "🆉"},
	{"#!/bin/ksh", "🐚"},
	{"#!/usr/bin/ksh", "🐚"},
	{"#!/usr/bin/env ksh", "🐚"},
	{"#!/usr/bin/perl", "🐪"},
	{"#!/usr/bin/perl5", "🐪"},
	{"#!/usr/local/bin/perl", "🐪"},
	{"#!/usr/bin/env perl", "🐪"},
	{"#!/usr/bin/env perl5", "🐪"},
	{"#!/opt/bin/perl", "🐪"},
	{"#!/bin/ruby", "♦️"},
	{"#!/usr/bin/ruby", "♦️"},
	{"#!/usr/local/bin/ruby", "♦️"},
	{"#!/usr/bin/env ruby", "♦️"},
	{"#!/opt/local/bin/ruby", "♦️"},
	{"#!/usr/bin/python", "🐍"},
	{"#!/usr/bin/python2", "🐍"},
	{"#!/usr/bin/python3", "🐍"},
	{"#!/usr/local/bin/python", "🐍"},
	{"#!/usr/bin/env python", "🐍"},
	{"#!/usr/bin/env python2", "🐍"},
	{"#!/usr/bin/env python3", "🐍"},
	{"#!/usr/bin/lua", "🌙"},
	{"#!/usr/local/bin/lua", "🌙"},
	{"#!/usr/bin/env lua", "🌙"},
	{"#!/usr/bin/tcl", "☯️"},
	{"#!/usr/local/bin/tcl", "☯️"},
	{"#!/usr/bin/env tcl", "☯️"},
	{"#!/usr/bin/awk", "🐦"},
	{"#!/usr/bin/awk -f", "🐦"},
	{"#!/usr/local/bin/awk", "🐦"},
	{"#!/usr/bin/env awk", "🐦"},
	{"#!/usr/bin/gawk", "🐦"},
	{"#!/usr/bin/env gawk", "🐦"},
	{"#!/usr/bin/node", "💚"},
	{"#!/usr/local/bin/node", "💚"},
	{"#!/usr/bin/env node", "💚"},
	{"#!/usr/bin/nodejs", "💚"},
	{"#!/usr/bin/env nodejs", "💚"},
	{"#!/usr/bin/php", "🐘"},
	{"#!/usr/local/bin/php", "🐘"},
	{"#!/usr/bin/env php", "🐘"},
	{"#!/usr/bin/fish", "🐟"},
	{"#!/usr/local/bin/fish", "🐟"},
	{"#!/usr/bin/env fish", "🐟"},
}

// extensionTable matches the suffix after the last dot, case-insensitively.
var extensionTable = []rule{
	{"md", "📑"},
	{"jpg", "📸"},
	{"jpeg", "📸"},
	{"png", "📸"},
	{"gif", "📸"},
	{"bmp", "📸"},
	{"svg", "📸"},
	{"webp", "📸"},
	{"mp4", "🎬"},
	{"avi", "🎬"},
	{"mkv", "🎬"},
	{"mov", "🎬"},
	{"flv", "🎬"},
	{"wmv", "🎬"},
	{"webm", "🎬"},
	{"mp3", "🎧"},
	{"wav", "🎧"},
	{"ogg", "🎧"},
	{"flac", "🎧"},
	{"m4a", "🎧"},
	{"aac", "🎧"},
	{"zip", "📦"},
	{"tar", "📦"},
	{"gz", "📦"},
	{"bz2", "📦"},
	{"xz", "📦"},
	{"7z", "📦"},
	{"rar", "📦"},
	{"deb", "📥"},
	{"rpm", "📥"},
	{"py", "🐍"},
	{"sh", "🐚"},
	{"bash", "💰"},
	{"fish", "🐟"},
	{"zsh", "🆉 "},
	{"js", "💻"},
	{"css", "🎨"},
	{"cpp", "🔬"},
	{"c", "🔬"},
	{"java", "☕"},
	{"class", "☕"},
	{"go", "🐹"},
	{"mod", "🐹"},
	{"rb", "♦️"},
	{"gem", "💎"},
	{"rs", "🦀"},
	{"php", "🐘"},
	{"h", "🧢"},
	{"hpp", "🧢"},
	{"kt", "💻"},
	{"scala", "📐"},
	{"jsx", "💻"},
	{"tsx", "💻"},
	{"ts", "🅃 "},
	{"tf", "🏗️"},
	{"vue", "🟩"},
	{"dart", "🦋"},
	{"lua", "💻"},
	{"pl", "🐪"},
	{"r", "📈"},
	{"m", "💻"},
	{"mm", "💻"},
	{"asm", "💻"},
	{"s", "💻"},
	{"f", "🅵"},
	{"f90", "🅵"},
	{"lisp", "λ"},
	{"cl", "λ"},
	{"lsp", "λ"},
	{"hs", "💻"},
	{"lhs", "💻"},
	{"ml", "Ⓜ️"},
	{"clj", "💻"},
	{"groovy", "💻"},
	{"gradle", "🐘"},
	{"jl", "💻"},
	{"ex", "💻"},
	{"exs", "💻"},
	{"elm", "💻"},
	{"coffee", "☕"},
	{"d", "🅳 "},
	{"cs", "💻"},
	{"vb", "💻"},
	{"fs", "💻"},
	{"sql", "🗄️"},
	{"db", "🗄️"},
	{"pas", "🏫"},
	{"cob", "💻"},
	{"ada", "✈️"},
	{"adb", "✈️"},
	{"ads", "✈️"},
	{"o", "🧩"},
	{"ko", "🌰"},
	{"txt", "📝"},
	{"rst", "📝"},
	{"log", "🪵"},
	{"ttf", "🔤"},
	{"otf", "🔤"},
	{"woff", "🔤"},
	{"woff2", "🔤"},
	{"pdf", "📚"},
	{"djvu", "📚"},
	{"epub", "📚"},
	{"pem", "🔑"},
	{"crt", "🔑"},
	{"key", "🔑"},
	{"pub", "🔑"},
	{"p12", "🔑"},
	{"csv", "📊"},
	{"torrent", "🌊"},
	{"iso", "💽"},
	{"img", "💽"},
	{"qcow", "🐮"},
	{"qcow2", "🐮"},
	{"vv", "🕹️"},
	{"doc", "📄"},
	{"docx", "📄"},
	{"odt", "📄"},
	{"rtf", "📄"},
	{"xls", "📄"},
	{"xlsx", "📄"},
	{"ods", "📄"},
	{"ppt", "📄"},
	{"pptx", "📄"},
	{"odp", "📄"},
	{"conf", "⚙️"},
	{"config", "⚙️"},
	{"cfg", "⚙️"},
	{"ini", "⚙️"},
	{"toml", "⚙️"},
	{"yaml", "🅈 "},
	{"yml", "🅈 "},
	{"json", "🏝️"},
	{"html", "🌐"},
	{"target", "🎯"},
	{"service", "🚀"},
	{"socket", "🔌"},
	{"vim", "🖖"},
	{"blend", "🧈"},
	{"app", "📱"},
	{"apk", "📱"},
	{"ipa", "📲"},
	{"dmg", "💿"},
	{"pkg", "📦"},
	{"patch", "🩹"},
	{"diff", "🆚"},
	{"plist", "📋"},
	{"pb", "📋"},
	{"scpt", "📜"},
	{"swift", "🐦"},
	{"xcodeproj", "🛠️"},
	{"mlmodel", "🧠"},
	{"arobject", "🎭"},
	{"cmake", "🏭"},
	{"mvn", "🏹"},
	{"ninja", "🥷"},
	{"sks", "🎮"},
	{"car", "🚗"},
	{"xcassets", "🗂️"},
	{"dSYM", "🐛"},
	{"terminal", "🖥️"},
	{"desktop", "🖥️"},
	{"lock", "🔒"},
	{"webloc", "🔗"},
	{"workflow", "🔄"},
	{"rc", "👟"},
	{"bundle", "🎁"},
	{"sock", "🧦"},
	{"tmp", "⏳"},
	{"ccl", "🎨"},
	{"xib", "🖼️"},
	{"icns", "🖼️"},
	{"framework", "🏗️"},
	{"playground", "🎠"},
	{"part", "🧩"},
	{"bak", "🔙"},
	{"cache", "⏱️"},
	{"cron", "📅"},
	{"env", "🌍"},
	{"bin", "💾"},
	{"pid", "🪪"},
	{"swap", "🔄"},
	{"mermaid", "🌊"},
	{"plantuml", "🌱"},
	{"dot", "📍"},
	{"drawio", "📉"},
}

// devExactTable matches full device node names, case-sensitively. Applies
// only inside a device-context directory.
var devExactTable = []rule{
	{"loop", "🔁"},
	{"null", "🕳️"},
	{"zero", "🕳️"},
	{"random", "🎲"},
	{"urandom", "🎲"},
	{"tty", "🖥️"},
	{"usb", "🔌"},
	{"vga_arbiter", "🖼️"},
	{"vhci", "🔌"},
	{"vhost-net", "🌐"},
	{"vhost-vsock", "💬"},
	{"mcelog", "📋"},
	{"media0", "🎬"},
	{"mei0", "🧠"},
	{"mem", "🗄️"},
	{"hpet", "⏱️"},
	{"hwrng", "🎲"},
	{"kmsg", "📜"},
	{"kvm", "🌰"},
	{"zram", "🗜️"},
	{"udmabuf", "🔄"},
	{"uhid", "🕹️"},
	{"rfkill", "📡"},
	{"ppp", "🌐"},
	{"ptmx", "🖥️"},
	{"userfaultfd", "🚧"},
	{"nvram", "🗄️"},
	{"port", "🔌"},
	{"autofs", "🚗"},
	{"btrfs-control", "🌳"},
	{"console", "🖥️"},
	{"full", "🔒"},
	{"fuse", "🔥"},
	{"gpiochip0", "📌"},
	{"cuse", "🧩"},
	{"cpu_dma_latency", "⏱️"},
}

// devPrefixTable matches device node name prefixes, in table order.
var devPrefixTable = []rule{
	{"loop", "🔁"},
	{"sd", "💽"},
	{"tty", "🖥️"},
	{"usb", "🔌"},
	{"video", "🎥"},
	{"nvme", "💽"},
	{"lp", "🖨️"},
	{"hidraw", "🔠"},
	{"vcs", "📟"},
	{"vcsa", "📟"},
	{"ptp", "🕰️"},
	{"rtc", "🕰️"},
	{"watchdog", "🐕"},
	{"mtd", "⚡"},
}
