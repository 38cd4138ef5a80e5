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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"

	"gochip8/errors"
)

// Loader specifies the ROM to load into the emulator.
type Loader struct {
	// filename, or URL, of the ROM to load.
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a successful Load() the
	// field is set to the hash of the loaded data.
	Hash string

	// copy of the loaded data. once it is non-empty, subsequent calls to
	// Load() return immediately without reopening the source.
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the Loader's filename, suitable
// for use in generated filenames (see paths.UniqueFilename).
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	return shortName[:len(shortName)-len(path.Ext(cl.Filename))]
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load reads the ROM data into the Data field. Loader filenames with a
// valid URL scheme use that method to load the data; otherwise the
// filename is opened directly. Currently supported schemes are HTTP(S) and
// the local filesystem.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var err error
	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(cl.Filename)
		if err != nil {
			return errors.New(errors.ROMFileError, err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return errors.New(errors.ROMFileError, err)
		}

	case "file", "":
		f, err := os.Open(cl.Filename)
		if err != nil {
			return errors.New(errors.ROMFileCannotOpen, cl.Filename)
		}
		defer f.Close()

		cl.Data, err = io.ReadAll(f)
		if err != nil {
			return errors.New(errors.ROMFileError, err)
		}

	default:
		return errors.New(errors.ROMUnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return errors.New(errors.ROMHashMismatch, cl.Hash, hash)
	}
	cl.Hash = hash

	return nil
}
