package service

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/features/requests/dto"
	"ewm_backend/internals/features/requests/model"
)

// ModerateRequests memproses batch update status request untuk sebuah event
// milik caller. Alur:
//  1. event tanpa moderasi / tanpa limit → no-op, dua list kosong
//  2. limit sudah penuh → 409
//  3. semua request di batch harus PENDING, kalau tidak → 409 tanpa mutasi
//  4. alokasi slot mengikuti urutan requestIds; slot habis → sisanya REJECTED
//     meskipun caller minta CONFIRMED
//  5. simpan, lalu hitung ulang confirmed_requests dari COUNT otoritatif
func (s *RequestService) ModerateRequests(ctx context.Context, userID, eventID uint, req dto.UpdateStatusRequest) (dto.UpdateStatusResult, error) {
	result := dto.UpdateStatusResult{
		ConfirmedRequests: []dto.RequestDto{},
		RejectedRequests:  []dto.RequestDto{},
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return result, notFound(err, "User tidak ditemukan")
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return result, notFound(err, "Event tidak ditemukan")
	}
	if event.EventInitiatorID != user.UserID {
		return result, fiber.NewError(fiber.StatusConflict, "User bukan initiator event ini")
	}

	target, ok := model.ParseStatus(req.Status)
	if !ok || (target != model.StatusConfirmed && target != model.StatusRejected) {
		return result, fiber.NewError(fiber.StatusBadRequest, "Status tujuan harus CONFIRMED atau REJECTED")
	}

	if !event.EventRequestModeration || event.EventParticipantLimit <= 0 {
		// request di event seperti ini auto-confirmed saat dibuat,
		// tidak ada yang perlu dimoderasi
		return result, nil
	}
	if event.EventConfirmedRequests >= int64(event.EventParticipantLimit) {
		return result, fiber.NewError(fiber.StatusConflict, "Batas peserta event sudah tercapai")
	}

	loaded, err := s.requests.FindByIDs(ctx, req.RequestIDs)
	if err != nil {
		return result, err
	}
	byID := make(map[uint]model.RequestModel, len(loaded))
	for _, r := range loaded {
		byID[r.RequestID] = r
	}

	// precheck all-or-nothing sebelum mutasi apa pun
	ordered := make([]model.RequestModel, 0, len(req.RequestIDs))
	for _, id := range req.RequestIDs {
		r, found := byID[id]
		if !found {
			return result, fiber.NewError(fiber.StatusNotFound, "Request tidak ditemukan di batch")
		}
		if r.RequestStatus != model.StatusPending {
			return result, fiber.NewError(fiber.StatusConflict, "Semua request di batch harus berstatus PENDING")
		}
		ordered = append(ordered, r)
	}

	availableSlots := int64(event.EventParticipantLimit) - event.EventConfirmedRequests
	if availableSlots < 0 {
		availableSlots = 0
	}

	mutated := make([]model.RequestModel, 0, len(ordered))
	for _, r := range ordered {
		if target == model.StatusConfirmed && availableSlots > 0 {
			r.RequestStatus = model.StatusConfirmed
			availableSlots--
			result.ConfirmedRequests = append(result.ConfirmedRequests, dto.ToRequestDto(r))
		} else {
			r.RequestStatus = model.StatusRejected
			result.RejectedRequests = append(result.RejectedRequests, dto.ToRequestDto(r))
		}
		mutated = append(mutated, r)
	}

	if err := s.requests.SaveAll(ctx, mutated); err != nil {
		return result, err
	}
	if err := s.recountConfirmed(ctx, &event); err != nil {
		return result, err
	}
	return result, nil
}
