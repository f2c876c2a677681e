// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	var commands strings.Builder
	for _, cmd := range sessionCommands {
		fmt.Fprintf(&commands, "* %s\n", cmd.Usage)
	}

	message := fmt.Sprintf(`

 **Ordset %s**

An ordered set of integers kept balanced as an AVL tree. Membership, insertion and
removal stay O(log n) no matter the order values arrive in.

Built with Go %s

# 1. Commands
* ordset tui: interactive session with a live view of the tree
* ordset load FILE...: insert integers from .txt, .csv, .json or .yaml files
* ordset eval "insert 5 3 8; in": run session commands and print the results
* ordset settings: show (and create) ~/%s

# 2. Session commands
%s
# 3. Empty set
* min and max print (empty) when the set holds no values

# 4. Keys in the interactive session
* <enter>: run the typed command
* <ctrl> + y: copy the sorted contents to the clipboard
* <ctrl> + l: clear the output log
* <pgup>/<pgdown>: scroll the tree view
* <esc> or <ctrl> + c: quit

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), configFileName, commands.String())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
