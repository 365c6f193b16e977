package services

import (
	"errors"

	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const requestDomain = "request"

type RequestService interface {
	Search(query *dto.SearchRequestsQuery) (*dto.RequestListResponse, error)
	GetRequest(requestID string) (*dto.RequestResponse, error)
	CreateRequest(userID string, req *dto.CreateRequestRequest, ip string) (*dto.RequestResponse, error)
	UpdateRequest(userID, requestID string, req *dto.UpdateRequestRequest, ip string) (*dto.RequestResponse, error)
	DeleteRequest(userID, requestID string, ip string) error
}

type requestService struct {
	requestRepo repositories.RequestRepository
	logRepo     repositories.LogRepository
	matcher     AlertMatcherService
	imageURL    func(name string) string
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	logRepo repositories.LogRepository,
	matcher AlertMatcherService,
	imageURL func(name string) string,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		logRepo:     logRepo,
		matcher:     matcher,
		imageURL:    imageURL,
	}
}

func (s *requestService) Search(query *dto.SearchRequestsQuery) (*dto.RequestListResponse, error) {
	criteria := repositories.RequestCriteria{
		Content:  query.Content,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	requests, total, err := s.requestRepo.Find(criteria)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, requestDomain)
	}

	resp := &dto.RequestListResponse{
		Requests: make([]dto.RequestResponse, 0, len(requests)),
		Total:    total,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}
	for i := range requests {
		resp.Requests = append(resp.Requests, dto.NewRequestResponse(&requests[i], s.imageURL))
	}
	return resp, nil
}

func (s *requestService) GetRequest(requestID string) (*dto.RequestResponse, error) {
	request, err := s.requestRepo.FindByIDWithOffers(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrNotFound(err, requestDomain, "request not found")
		}
		return nil, apperrors.ErrDatabase(err, requestDomain)
	}
	resp := dto.NewRequestResponse(request, s.imageURL)
	return &resp, nil
}

func (s *requestService) CreateRequest(userID string, req *dto.CreateRequestRequest, ip string) (*dto.RequestResponse, error) {
	request := &models.Request{
		UserID:    userID,
		Content:   req.Content,
		Budget:    req.Budget,
		Currency:  models.Currency(req.Currency),
		Longitude: req.Longitude,
		Latitude:  req.Latitude,
		Radius:    req.Radius,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.ErrDatabase(err, requestDomain)
	}

	go recordActivity(s.logRepo, models.LogRequestCreate, &userID, strPtr(ip), strPtr(request.ID))

	// Matching runs off the request path; the author never waits on it.
	go s.matcher.ProcessNewRequest(request)

	resp := dto.NewRequestResponse(request, s.imageURL)
	return &resp, nil
}

func (s *requestService) UpdateRequest(userID, requestID string, req *dto.UpdateRequestRequest, ip string) (*dto.RequestResponse, error) {
	request, err := s.findOwned(userID, requestID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		request.Content = *req.Content
	}
	if req.Budget != nil {
		request.Budget = *req.Budget
	}
	if req.Currency != nil {
		request.Currency = models.Currency(*req.Currency)
	}
	if req.ClearLocation {
		request.Longitude = nil
		request.Latitude = nil
		request.Radius = nil
	} else if req.Longitude != nil {
		request.Longitude = req.Longitude
		request.Latitude = req.Latitude
		request.Radius = req.Radius
	}

	if err := s.requestRepo.Update(request); err != nil {
		return nil, apperrors.ErrDatabase(err, requestDomain)
	}

	go recordActivity(s.logRepo, models.LogRequestUpdate, &userID, strPtr(ip), strPtr(request.ID))

	resp := dto.NewRequestResponse(request, s.imageURL)
	return &resp, nil
}

func (s *requestService) DeleteRequest(userID, requestID string, ip string) error {
	if _, err := s.findOwned(userID, requestID); err != nil {
		return err
	}

	if err := s.requestRepo.Delete(requestID); err != nil {
		return apperrors.ErrDatabase(err, requestDomain)
	}

	go recordActivity(s.logRepo, models.LogRequestDelete, &userID, strPtr(ip), strPtr(requestID))
	return nil
}

func (s *requestService) findOwned(userID, requestID string) (*models.Request, error) {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrNotFound(err, requestDomain, "request not found")
		}
		return nil, apperrors.ErrDatabase(err, requestDomain)
	}
	if request.UserID != userID {
		return nil, apperrors.NewForbiddenError("not the owner of this request")
	}
	return request, nil
}
