package metadomain

type CallToActionValue struct {
	Link string `json:"link"`
}

type CallToAction struct {
	Type  string            `json:"type"`
	Value CallToActionValue `json:"value"`
}

type LinkData struct {
	Link string `json:"link"`
}

type VideoData struct {
	CallToAction CallToAction `json:"call_to_action"`
}

type ObjectStorySpec struct {
	LinkData  *LinkData  `json:"link_data,omitempty"`
	VideoData *VideoData `json:"video_data,omitempty"`
}

type Creative struct {
	ID              string           `json:"id"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	ImageURL        string           `json:"image_url"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec,omitempty"`
}

// Thumbnail usa thumbnail_url e recorre a image_url
func (c *Creative) Thumbnail() string {
	if c == nil {
		return ""
	}
	if c.ThumbnailURL != "" {
		return c.ThumbnailURL
	}
	return c.ImageURL
}

// Link usa o link do post e recorre ao call to action do vídeo
func (c *Creative) Link() string {
	if c == nil || c.ObjectStorySpec == nil {
		return ""
	}
	if c.ObjectStorySpec.LinkData != nil && c.ObjectStorySpec.LinkData.Link != "" {
		return c.ObjectStorySpec.LinkData.Link
	}
	if c.ObjectStorySpec.VideoData != nil {
		return c.ObjectStorySpec.VideoData.CallToAction.Value.Link
	}
	return ""
}
