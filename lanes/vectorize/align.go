// Copyright 2026 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vectorize

// AlignedSize rounds size up to the next multiple of width. Buffers
// allocated at an aligned size can be vectorized without padding.
func AlignedSize(size, width int) int {
	if width <= 0 {
		return size
	}
	return ((size + width - 1) / width) * width
}

// IsAligned reports whether size is a multiple of width.
func IsAligned(size, width int) bool {
	if width <= 0 {
		return true
	}
	return size%width == 0
}
