// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package imageloader is used to specify the program image that is to be
// attached to the emulated machine.
//
// An image is a raw byte stream with no header. When the image is ready to be
// loaded the Load() function should be used. Load() handles loading of data
// from local files and over HTTP/HTTPS.
//
// The simplest instance of the Loader type:
//
//	ld := imageloader.Loader{
//		Filename: "roms/TST8080.COM",
//	}
//
// After a successful Load() the Hash field contains the SHA-1 of the data.
// If the Hash field is set before the call to Load() then the loaded data
// must match it.
package imageloader
