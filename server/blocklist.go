package server

import (
	"path"
	"strings"
)

// Scanners constantly probe well-known files and admin endpoints; none
// of these are ever valid page paths.
var blockedPaths = map[string]struct{}{
	"/robots.txt":    {},
	"/sitemap.xml":   {},
	"/config.json":   {},
	"/package.json":  {},
	"/composer.json": {},
	"/.env":          {},
	"/.git":          {},
	"/.git/config":   {},
	"/.svn":          {},
	"/.ds_store":     {},
	"/.well-known":   {},
	"/wp-login.php":  {},
	"/wp-admin":      {},
	"/wp-cron.php":   {},
	"/xmlrpc.php":    {},
	"/admin":         {},
	"/administrator": {},
	"/favicon.ico":   {},
	"/server-status": {},
	"/server-info":   {},
	"/graphql":       {},
	"/sse":           {},
	"/mcp":           {},
	"/mcp-sse":       {},
}

// File extensions that are never valid page paths.
var blockedExtensions = map[string]struct{}{
	".txt": {}, ".xml": {}, ".json": {}, ".env": {}, ".yml": {}, ".yaml": {},
	".php": {}, ".asp": {}, ".aspx": {}, ".jsp": {}, ".cgi": {}, ".pl": {},
	".bak": {}, ".old": {}, ".orig": {}, ".swp": {}, ".sql": {}, ".db": {},
	".log": {}, ".ini": {}, ".cfg": {}, ".conf": {}, ".toml": {},
	".htaccess": {}, ".htpasswd": {}, ".git": {}, ".svn": {}, ".ico": {},
}

func blockedPath(p string) bool {
	_, ok := blockedPaths[strings.ToLower(p)]
	return ok
}

func blockedExtension(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	if ext == "" {
		return false
	}
	_, ok := blockedExtensions[ext]
	return ok
}
