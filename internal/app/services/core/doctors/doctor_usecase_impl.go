package doctors

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository          contracts.DoctorRepository
	TreatmentOptionRepository contracts.TreatmentOptionRepository
	MinioStorage              contracts.Storage
	BucketName                string
	InternalConfig            *config.InternalConfig
	Log                       *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	treatmentOptionRepository contracts.TreatmentOptionRepository,
	minioStorage contracts.Storage,
	bucketName string,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:          doctorRepository,
		TreatmentOptionRepository: treatmentOptionRepository,
		MinioStorage:              minioStorage,
		BucketName:                bucketName,
		InternalConfig:            internalConfig,
		Log:                       logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertAcknowledgement, error) {
	requestID := utils.GetRequestID(ctx)

	// Specialty must name a treatment patients can book
	treatment, err := uc.TreatmentOptionRepository.FindByName(ctx, request.Specialty)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		return nil, exceptions.ErrTreatmentUnknown(nil, request.Specialty)
	}

	doctor := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
	}
	doctor.SetCreatedAt()

	if request.Image != "" {
		doctor.Image, err = uc.uploadImage(ctx, request.Image)
		if err != nil {
			return nil, err
		}
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.removeImage(ctx, doctor.Image)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return &responses.InsertAcknowledgement{Acknowledged: true, InsertedID: doctorID}, nil
}

func (uc *doctorUsecase) uploadImage(ctx context.Context, encodedImage string) (string, error) {
	data, contentType, ext, err := utils.DecodeBase64Image(encodedImage)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	maxSize := uc.InternalConfig.Minio.DoctorImageMaxSizeInMB
	if maxSize > 0 && len(data) > maxSize*1024*1024 {
		return "", exceptions.ErrImageValidation(fmt.Errorf("image is %d bytes, limit is %d MB", len(data), maxSize))
	}

	objectName := utils.GenerateDoctorImageObjectName(ext)
	return uc.MinioStorage.UploadImage(ctx, data, uc.BucketName, objectName, contentType)
}

func (uc *doctorUsecase) removeImage(ctx context.Context, objectName string) {
	if objectName == "" {
		return
	}
	if err := uc.MinioStorage.DeleteObject(ctx, uc.BucketName, objectName); err != nil {
		uc.Log.Warn("doctorUsecase.removeImage error deleting object",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBucketNameKey, uc.BucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) (*responses.DeleteAcknowledgement, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, constvars.MongoCollectionDoctors)
	}

	deleted, err := uc.DoctorRepository.DeleteByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	uc.removeImage(ctx, doctor.Image)

	return &responses.DeleteAcknowledgement{Acknowledged: true, DeletedCount: deleted}, nil
}
