/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package pfx

import "fmt"

// State is the lifecycle state of a Loader.
type State uint8

const (
	// Uninitialized has no library and Null slots.
	Uninitialized State = iota
	// LoaderReady has the loader-scope slots populated.
	LoaderReady
	// InstanceReady has an adopted instance.
	InstanceReady
	// DeviceReady has an adopted device.
	DeviceReady
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case LoaderReady:
		return "loader-ready"
	case InstanceReady:
		return "instance-ready"
	case DeviceReady:
		return "device-ready"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}
