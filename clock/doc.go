/*
Copyright (c) Facebook, Inc. and its affiliates.

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

/*
Package clock reads the time shown by the display.

Time is taken with the CLOCK_GETTIME syscall on a chosen clock id
(CLOCK_REALTIME by default) and shifted by a fixed offset from UTC.
Only whole seconds are returned: the display has no calendar and no
sub-second resolution, so a plain elapsed-seconds count is all it needs.
*/
package clock
