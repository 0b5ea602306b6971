// Copyright 2026 sheetops. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package gsheets is a small toolkit for treating Google Sheets worksheets as tables.

The library packages can be used directly:

  - spreadsheet, a client bound to one spreadsheet that lists, creates and deletes worksheets, reads and writes
    tables, appends and merges rows, freezes header rows and sorts by multiple columns
  - table, the in-memory table with the A1 range arithmetic and the outer-join merge
  - auth, OAuth2 authorisation with persisted and automatically refreshed tokens

The gsheets command line application wraps them for use from scripts and cron jobs. It supports the following
commands:

  - authorise, to authorise application access to Google Sheets (and optionally Google Drive)
  - sheets, exists and range, to list and inspect worksheets
  - get, to download a worksheet as a TSV, CSV, XLSX, YAML or JSON file
  - put, append and merge, to upload a table file to a worksheet
  - create, delete, clear, freeze and sort, to manage worksheets
  - revision, to retrieve the latest Google Drive revision of the spreadsheet
*/
package gsheets
