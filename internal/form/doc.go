// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form keeps the state of an input form between user events:
// field values, focus, whether a submission has been attempted and which
// validation messages are visible.
//
// A [Form] is driven by three events: a field value change, a submit action
// and a return ("next field") action. Validation itself is delegated to
// [validators.FormValidator]. Messages stay hidden until the first
// submission attempt; after it every change updates them immediately.
//
// [LoginForm] binds the email/password fields of the login screen to a
// [Delegate], the callback contract of the host application.
//
// A Form is not safe for concurrent use. It is meant to be driven from a
// single UI event loop.
package form
