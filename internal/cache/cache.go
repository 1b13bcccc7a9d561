// Package cache keeps flattened catalog snapshots on disk so unchanged catalogs skip parsing.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/log"
	"github.com/hueseek/hueseek/where"
)

const TTL = 7 * 24 * time.Hour

const ext = ".json"

func path(key string) string {
	return filepath.Join(where.Snapshots(), key+ext)
}

// Key derives a deterministic SHA-256 identifier from the catalog source bytes and the load policy.
func Key(source []byte, policy string) string {
	h := sha256.New()
	h.Write(source)
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(policy)))
	return hex.EncodeToString(h.Sum(nil))
}

// Read decodes a cached snapshot into target if it exists and has not exceeded its TTL.
func Read(key string, target any) bool {
	p := path(key)

	info, err := filesystem.API().Stat(p)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	f, err := filesystem.API().Open(p)
	if err != nil {
		return false
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(target); err != nil {
		log.Warnf("discarding unreadable snapshot %s: %v", key, err)
		return false
	}
	return true
}

// Write persists a snapshot through an atomic rename.
func Write(key string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return filesystem.WriteAtomic(path(key), encoded, os.ModePerm)
}

// Prune removes expired snapshots and returns how many were deleted.
func Prune() (removed int) {
	fs := filesystem.API()
	_ = fs.Walk(where.Snapshots(), func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > TTL && fs.Remove(p) == nil {
			removed++
		}
		return nil
	})
	return
}

// CollectGarbage prunes expired snapshots in the background.
func CollectGarbage() {
	go func() {
		if n := Prune(); n > 0 {
			log.Infof("pruned %d expired catalog snapshots", n)
		}
	}()
}
