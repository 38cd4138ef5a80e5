// This file is part of gochip8.
//
// gochip8 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gochip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gochip8.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"gochip8/cartridgeloader"
	"gochip8/errors"
)

func TestLoadFromLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.ch8")
	if err := os.WriteFile(path, []byte{0x00, 0xE0, 0x12, 0x00}, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cl := cartridgeloader.NewLoader(path)
	if err := cl.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cl.HasLoaded() {
		t.Error("HasLoaded: want true")
	}
	if len(cl.Data) != 4 {
		t.Errorf("Data length: got %d, want 4", len(cl.Data))
	}
	if cl.Hash == "" {
		t.Error("Hash: want non-empty after Load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader("/does/not/exist.ch8")
	err := cl.Load()
	if err == nil {
		t.Fatal("expected error loading a missing file")
	}
	if !errors.Is(err, errors.ROMFileCannotOpen) {
		t.Errorf("expected ROMFileCannotOpen, got %v", err)
	}
}

func TestLoadHashMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.ch8")
	if err := os.WriteFile(path, []byte{0x00, 0xE0}, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cl := cartridgeloader.NewLoader(path)
	cl.Hash = "0000000000000000000000000000000000000000"
	err := cl.Load()
	if !errors.Is(err, errors.ROMHashMismatch) {
		t.Errorf("expected ROMHashMismatch, got %v", err)
	}
}

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader("/roms/pong.ch8")
	if got := cl.ShortName(); got != "pong" {
		t.Errorf("ShortName: got %q, want %q", got, "pong")
	}
}
