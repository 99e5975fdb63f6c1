package model

import "time"

// SiteContent is one editable block of site copy in the
// `site_content` table, keyed by a stable string such as
// "home.hero" or "faq.selling".  Admins upsert values through the
// content endpoints; public pages read them.
//
// Fields:
//  ID          – primary key identifier.
//  Key         – unique content key.
//  Value       – the copy itself (plain text or HTML).
//  ContentType – "text" or "html".
//  UpdatedAt   – last update timestamp.
type SiteContent struct {
	ID          uint64    // site_content.id
	Key         string    // site_content.key
	Value       string    // site_content.value
	ContentType string    // site_content.content_type
	UpdatedAt   time.Time // site_content.updated_at
}
