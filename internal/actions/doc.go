// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a pdfmerge command (merge, list) and
// orchestrates operations across the discovery, selection, and pdf packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the target directory,
//     resolved configuration, and Splog
//   - Actions are stateless - each run discovers its inputs fresh
//   - Actions handle user interaction through the tui package
//
// Dependencies:
//   - discovery: Candidate file enumeration
//   - selection: Selection parsing and validation
//   - pdf: PDF validation, page counting, and merging
//   - tui: User interface and prompts
package actions
