package dto

import "tanyaku_backend/internals/features/qna/tags/model"

type TagDTO struct {
	TagID   uint   `json:"tag_id"`
	TagName string `json:"tag_name"`
}

// UserTagCountDTO: satu baris statistik pemakaian tag milik user
// (buat chart profil di frontend).
type UserTagCountDTO struct {
	TagID   uint   `json:"tag_id"`
	TagName string `json:"tag_name"`
	Count   int    `json:"count"`
}

func ToTagDTO(m model.TagModel) TagDTO {
	return TagDTO{TagID: m.TagID, TagName: m.TagName}
}

func ToTagDTOs(ms []model.TagModel) []TagDTO {
	out := make([]TagDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTagDTO(m))
	}
	return out
}
