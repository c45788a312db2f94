// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

// Directory is where schedsim keeps its data.
var Directory = filepath.Join(xdg.DataHome, "schedsim")

// ResultsDirectory is the default location of experiment result files.
var ResultsDirectory = filepath.Join(Directory, "results")

// Mkdir creates the given directory along with any missing parents.
func Mkdir(dir string) error {
	if err := os.MkdirAll(dir, FilePermissions); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return nil
}
